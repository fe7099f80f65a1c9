package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/kiccas/levels"
	"github.com/milk9111/kiccas/prefabs"
	"github.com/milk9111/kiccas/scene"
)

// Game switches between scenes. The current scene decides when to leave and
// where to go; Game builds the next one.
type Game struct {
	ctx     *scene.Context
	current scene.Scene
	watcher *prefabs.Watcher
}

// NewGame starts at the intro unless start names another scene.
func NewGame(ctx *scene.Context, start scene.Transition, watcher *prefabs.Watcher) *Game {
	g := &Game{ctx: ctx, watcher: watcher}
	if start.Kind == scene.Stay {
		g.current = scene.NewIntro(ctx)
	} else {
		g.switchTo(start)
	}
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	g.pollPrefabs()

	t := g.current.Update()
	if t.Kind == scene.Stay {
		return nil
	}
	if t.Kind == scene.ToQuit {
		return ebiten.Termination
	}
	g.switchTo(t)
	return nil
}

// switchTo closes the current scene and opens the destination of t. A level
// that fails to load is logged and the menu is shown instead.
func (g *Game) switchTo(t scene.Transition) {
	if g.current != nil {
		g.current.Close()
	}
	g.ctx.Logger.Debug("scene", "to", t.Kind, "level", t.Level)

	switch t.Kind {
	case scene.ToOptions:
		g.current = scene.NewOptions(g.ctx)
	case scene.ToCredits:
		g.current = scene.NewCredits(g.ctx)
	case scene.ToConnect4:
		g.current = scene.NewConnect4(g.ctx)
	case scene.ToLevel:
		if levels.Playable(t.Level) {
			play, err := scene.NewPlay(g.ctx, t.Level)
			if err == nil {
				g.current = play
				return
			}
			g.ctx.Logger.Error("enter level", "level", t.Level, "err", err)
		}
		g.current = scene.NewMenu(g.ctx)
	default:
		g.current = scene.NewMenu(g.ctx)
	}
}

// pollPrefabs reloads tuning when a watched spec file changes. The new values
// apply from the next level entry.
func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.ctx.ReloadPrefabs()
			if mod, ok := prefabs.ModTime(name); ok {
				g.ctx.Logger.Info("prefabs reloaded", "file", name, "modified", mod)
			} else {
				g.ctx.Logger.Info("prefabs reloaded", "file", name)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.ctx.Logger.Warn("prefab watcher", "err", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.current.Layout()
}

func (g *Game) Close() {
	if g.current != nil {
		g.current.Close()
	}
}
