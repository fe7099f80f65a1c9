package scene

import (
	"math/rand/v2"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/kiccas/assets"
	"github.com/milk9111/kiccas/level"
	"github.com/milk9111/kiccas/levels"
	"github.com/milk9111/kiccas/prefabs"
	"github.com/milk9111/kiccas/settings"
)

const (
	menuMusicPath = "sound/music.mp3"
	clickPath     = "sound/ClicDeSouris.wav"
	hoverPath     = "sound/ClicDeSouris2.wav"
	fontPath      = "font.ttf"
)

// Context is the state shared by every scene. The top-level game owns it.
type Context struct {
	Logger    *log.Logger
	Loader    *assets.Loader
	Resources string

	Levels    *levels.Table
	LevelSpec level.Spec
	Theme     *prefabs.ThemeSpec
	Rand      *rand.Rand

	Volume     int
	Fullscreen bool

	music *audio.Player
}

// VolumePath is the location of the volume file.
func (c *Context) VolumePath() string {
	return filepath.Join(c.Resources, filepath.FromSlash(settings.VolumeFile))
}

// SetVolume applies v to the music and stores it in the volume file.
func (c *Context) SetVolume(v int) {
	c.Volume = settings.ClampVolume(v)
	if c.music != nil {
		c.music.SetVolume(musicVolume(c.Volume))
	}
	if err := settings.SaveVolume(c.VolumePath(), c.Volume); err != nil {
		c.Logger.Warn("save volume", "err", err)
	}
}

func (c *Context) SetFullscreen(on bool) {
	c.Fullscreen = on
	ebiten.SetFullscreen(on)
}

// PlayMenuMusic starts the menu music the first time it is called and
// resumes it afterwards.
func (c *Context) PlayMenuMusic() {
	if c.music == nil {
		m, err := c.Loader.LoadMusic(menuMusicPath)
		if err != nil {
			c.Logger.Warn("load music", "path", menuMusicPath, "err", err)
			return
		}
		c.music = m
	}
	c.music.SetVolume(musicVolume(c.Volume))
	if !c.music.IsPlaying() {
		c.music.Play()
	}
}

func (c *Context) PauseMenuMusic() {
	if c.music != nil {
		c.music.Pause()
	}
}

func (c *Context) Close() {
	if c.music != nil {
		_ = c.music.Close()
		c.music = nil
	}
}

// ReloadPrefabs reloads the level tuning and theme, keeping the previous
// values when a file fails to parse.
func (c *Context) ReloadPrefabs() {
	spec, err := prefabs.LevelSpecOr(c.LevelSpec)
	if err != nil {
		c.Logger.Warn("reload level spec", "err", err)
	}
	c.LevelSpec = spec
	theme, err := prefabs.LoadThemeSpec()
	if err != nil {
		c.Logger.Warn("reload theme", "err", err)
	} else {
		c.Theme = theme
	}
}

func musicVolume(v int) float64 {
	return float64(v) / settings.MaxVolume
}

// playSound restarts p from the beginning.
func playSound(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

func closeSounds(players ...*audio.Player) {
	for _, p := range players {
		if p != nil {
			_ = p.Close()
		}
	}
}
