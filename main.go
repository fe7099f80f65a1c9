// kiccas is a small side-scrolling platformer with a four-in-a-row
// mini-game.
//
// Usage:
//
//	kiccas              - Play from the intro
//	kiccas connect4     - Play the four-in-a-row mini-game directly
//
// Global flags:
//
//	--resources <dir>   - Asset root (default: resources)
//	--level <id>        - Start directly at level 1..4
//	--skip-intro        - Start at the main menu
//	--fullscreen        - Start in fullscreen
//	--seed <value>      - RNG seed for the mini-game (0 = random)
//	--debug             - Debug logging and prefab hot reload
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/milk9111/kiccas/assets"
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/level"
	"github.com/milk9111/kiccas/levels"
	"github.com/milk9111/kiccas/prefabs"
	"github.com/milk9111/kiccas/scene"
	"github.com/milk9111/kiccas/settings"
)

var (
	flagResources  string
	flagDebug      bool
	flagSkipIntro  bool
	flagLevel      int
	flagFullscreen bool
	flagSeed       uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kiccas",
	Short: "KICCAS - a side-scrolling platformer",
	Long: `KICCAS is a side-scrolling platformer with four levels, a settings
screen and a four-in-a-row mini-game.

Controls:
  Left/Right - Walk
  Space      - Jump (hold for a higher jump)
  P          - Pause (in a level), four-in-a-row (in the menu)
  Esc        - Back to the menu`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := scene.Transition{Kind: scene.Stay}
		switch {
		case flagLevel != 0:
			if !levels.Playable(flagLevel) {
				return fmt.Errorf("level %d out of range %d..%d", flagLevel, levels.First, levels.Last)
			}
			start = scene.Transition{Kind: scene.ToLevel, Level: flagLevel}
		case flagSkipIntro:
			start = scene.Transition{Kind: scene.ToMenu}
		}
		return run(start)
	},
}

var connect4Cmd = &cobra.Command{
	Use:   "connect4",
	Short: "Play four-in-a-row against the computer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(scene.Transition{Kind: scene.ToConnect4})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagResources, "resources", "resources", "Asset root directory")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and prefab hot reload")
	rootCmd.PersistentFlags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().BoolVar(&flagSkipIntro, "skip-intro", false, "Start at the main menu")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at a level (1..4)")

	rootCmd.AddCommand(connect4Cmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kiccas",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newContext(logger *log.Logger) (*scene.Context, error) {
	tbl, err := levels.LoadTable()
	if err != nil {
		return nil, err
	}

	ctx := &scene.Context{
		Logger:     logger,
		Loader:     assets.NewLoader(os.DirFS(flagResources), audio.NewContext(assets.SampleRate), logger),
		Resources:  flagResources,
		Levels:     tbl,
		LevelSpec:  level.DefaultSpec(),
		Theme:      &prefabs.ThemeSpec{},
		Fullscreen: flagFullscreen,
	}
	ctx.ReloadPrefabs()

	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	ctx.Rand = rand.New(rand.NewPCG(seed, seed))
	logger.Debug("rng", "seed", seed)

	ctx.Volume, err = settings.LoadVolume(ctx.VolumePath())
	if err != nil {
		logger.Warn("load volume, using default", "path", ctx.VolumePath(), "volume", ctx.Volume, "err", err)
	}
	return ctx, nil
}

func run(start scene.Transition) error {
	logger := newLogger()

	ctx, err := newContext(logger)
	if err != nil {
		return err
	}
	defer ctx.Close()

	var watcher *prefabs.Watcher
	if flagDebug {
		if w, err := prefabs.NewWatcher(prefabs.OverrideDir); err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("KICCAS")
	ebiten.SetTPS(common.TPS)
	ebiten.SetWindowClosingHandled(true)
	ctx.SetFullscreen(flagFullscreen)

	game := NewGame(ctx, start, watcher)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
