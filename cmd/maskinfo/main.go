// maskinfo prints the map and collision mask geometry of every level.
//
// Usage:
//
//	maskinfo [--resources <dir>] [--level <id>]
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/kiccas/levels"
)

var (
	flagResources string
	flagLevel     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maskinfo",
	Short: "Print map and mask sizes, scale factors and solid ratio per level",
	Args:  cobra.NoArgs,
	RunE:  runMaskInfo,
}

func init() {
	rootCmd.Flags().StringVar(&flagResources, "resources", "resources", "Asset root directory")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Only inspect this level id")
}

func runMaskInfo(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "maskinfo"})

	tbl, err := levels.LoadTable()
	if err != nil {
		return err
	}
	fsys := os.DirFS(flagResources)

	var rows []row
	for _, lvl := range tbl.Levels {
		if flagLevel != 0 && lvl.ID != flagLevel {
			continue
		}
		bg, err := decodeImage(fsys, lvl.Background)
		if err != nil {
			logger.Error("background", "level", lvl.ID, "err", err)
			continue
		}
		mask, err := decodeImage(fsys, lvl.Mask)
		if err != nil {
			logger.Error("mask", "level", lvl.ID, "err", err)
			continue
		}
		r, err := measure(lvl.ID, bg, mask)
		if err != nil {
			logger.Error("measure", "level", lvl.ID, "err", err)
			continue
		}
		rows = append(rows, r)
	}

	if len(rows) == 0 {
		return fmt.Errorf("no level could be inspected under %s", flagResources)
	}
	printRows(cmd.OutOrStdout(), rows)
	return nil
}

// decodeImage reads an image without the game's asset loader, which would
// pull in the graphics driver.
func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
