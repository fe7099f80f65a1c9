package scene

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/kiccas/ecs"
	"github.com/milk9111/kiccas/level"
	"github.com/milk9111/kiccas/levels"
	"github.com/milk9111/kiccas/physics"
)

// Sprite rects are smaller than their textures so the transparent border
// around the character does not collide.
const (
	playerTrimW = 25
	playerTrimH = 10
	enemyTrimW  = 20
	enemyTrimH  = 10
)

// Play runs one attempt at a level.
type Play struct {
	ctx   *Context
	level *level.Level

	background  *ebiten.Image
	playerRight []*ebiten.Image
	playerLeft  []*ebiten.Image
	enemyRight  []*ebiten.Image
	enemyLeft   []*ebiten.Image

	music *audio.Player
	jump  *audio.Player
	hud   *hud

	pause  *ebitenui.UI
	paused bool
}

// NewPlay loads level id. A missing background or mask aborts the level with
// an error wrapping level.ErrMissingAssets.
func NewPlay(ctx *Context, id int) (*Play, error) {
	entry := ctx.Levels.Lookup(id)

	bg, err := ctx.Loader.LoadImage(entry.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %w", level.ErrMissingAssets, err)
	}
	maskImg, err := ctx.Loader.DecodeImage(entry.Mask)
	if err != nil {
		return nil, fmt.Errorf("%w: mask: %w", level.ErrMissingAssets, err)
	}

	b := bg.Bounds()
	m, err := physics.NewLevelMap(physics.NewMask(maskImg), b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}
	ctx.Logger.Debug("level map",
		"level", id,
		"map", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"mask", fmt.Sprintf("%dx%d", m.Mask.Width(), m.Mask.Height()),
		"scale_x", m.ScaleX,
		"scale_y", m.ScaleY,
	)

	tun := ctx.LevelSpec.Tuning
	p := &Play{
		ctx:         ctx,
		background:  bg,
		playerRight: ctx.Loader.Frames("image/RW%d.png", tun.AnimFrames),
		playerLeft:  ctx.Loader.Frames("image/LW%d.png", tun.AnimFrames),
		enemyRight:  ctx.Loader.Frames("image/ER%d.png", tun.EnemyAnimFrames),
		enemyLeft:   ctx.Loader.Frames("image/EL%d.png", tun.EnemyAnimFrames),
		jump:        ctx.Loader.AudioOrNil(clickPath),
		hud:         newHUD(ctx),
	}

	spec := ctx.LevelSpec
	spec.PlayerW, spec.PlayerH = trimmedSize(p.playerRight, playerTrimW, playerTrimH, spec.PlayerW, spec.PlayerH)
	spec.EnemyW, spec.EnemyH = trimmedSize(p.enemyRight, enemyTrimW, enemyTrimH, spec.EnemyW, spec.EnemyH)

	p.level, err = level.New(id, m, spec)
	if err != nil {
		return nil, err
	}
	p.pause = NewPauseUI(p.resume, p.level.Quit)

	ctx.PauseMenuMusic()
	if music, err := ctx.Loader.LoadMusic(entry.Music); err != nil {
		ctx.Logger.Warn("load level music", "path", entry.Music, "err", err)
	} else {
		p.music = music
		p.music.SetVolume(musicVolume(ctx.Volume))
		p.music.Play()
	}
	return p, nil
}

// trimmedSize derives a collision size from the first animation frame, or
// keeps the configured size when the frame is missing.
func trimmedSize(frames []*ebiten.Image, trimW, trimH, w, h int) (int, int) {
	if len(frames) == 0 || frames[0] == nil {
		return w, h
	}
	b := frames[0].Bounds()
	if b.Dx() <= trimW || b.Dy() <= trimH {
		return w, h
	}
	return b.Dx() - trimW, b.Dy() - trimH
}

func (p *Play) resume() {
	p.paused = false
}

func (p *Play) Update() Transition {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if p.paused {
			p.resume()
		} else {
			p.level.Quit()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		p.paused = !p.paused
	}

	if p.paused {
		p.pause.Update()
		return p.transition(p.level.Outcome())
	}

	outcome := p.level.Update(readInput())
	p.handleEvents(p.level.Events.Drain())
	return p.transition(outcome)
}

func (p *Play) handleEvents(events []ecs.Event) {
	for _, evt := range events {
		switch evt.Type {
		case level.EventJump, level.EventStomp:
			playSound(p.jump)
		case level.EventComplete:
			p.ctx.Logger.Info("level complete", "level", p.level.ID, "score", p.level.Player.Score)
		case level.EventDead:
			p.ctx.Logger.Info("level failed", "level", p.level.ID, "score", p.level.Player.Score)
		}
	}
}

func (p *Play) transition(o level.Outcome) Transition {
	switch o {
	case level.Playing:
		return none
	case level.Complete:
		if next := p.level.Next(); levels.Playable(next) {
			return Transition{Kind: ToLevel, Level: next}
		}
	}
	return to(ToMenu)
}

func (p *Play) Draw(screen *ebiten.Image) {
	l := p.level
	cam := l.Camera.Rect()
	drawFull(screen, subImage(p.background, cam), 1)

	pl := l.Player
	drawImageRect(screen, frame(pl.Body, p.playerRight, p.playerLeft), pl.Rect.Offset(cam.X, cam.Y))

	l.Enemies.ForEach(func(_ ecs.Entity, e *physics.Enemy) {
		drawImageRect(screen, frame(e.Body, p.enemyRight, p.enemyLeft), e.Rect.Offset(cam.X, cam.Y))
	})

	p.hud.Draw(screen, l)

	if p.paused {
		p.pause.Draw(screen)
	}
}

func frame(b physics.Body, right, left []*ebiten.Image) *ebiten.Image {
	frames := right
	if b.Direction == physics.DirLeft {
		frames = left
	}
	if b.Frame < 0 || b.Frame >= len(frames) {
		return nil
	}
	return frames[b.Frame]
}

func (p *Play) Layout() (int, int) {
	return p.level.Spec.ViewW, p.level.Spec.ViewH
}

func (p *Play) Close() {
	closeSounds(p.music, p.jump)
}
