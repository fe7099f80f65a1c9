package main

import (
	"fmt"
	"image"
	"io"

	"github.com/milk9111/kiccas/physics"
)

type row struct {
	Level          int
	MapW, MapH     int
	MaskW, MaskH   int
	ScaleX, ScaleY float32
	Solid          float64
}

// measure builds the level map the game would use for bg and mask.
func measure(id int, bg, mask image.Image) (row, error) {
	b := bg.Bounds()
	m, err := physics.NewLevelMap(physics.NewMask(mask), b.Dx(), b.Dy())
	if err != nil {
		return row{}, err
	}
	return row{
		Level:  id,
		MapW:   m.Width,
		MapH:   m.Height,
		MaskW:  m.Mask.Width(),
		MaskH:  m.Mask.Height(),
		ScaleX: m.ScaleX,
		ScaleY: m.ScaleY,
		Solid:  m.Mask.SolidRatio(),
	}, nil
}

func printRows(w io.Writer, rows []row) {
	fmt.Fprintf(w, "  %-5s  %-11s  %-11s  %-15s  %s\n", "Level", "Map", "Mask", "Scale", "Solid")
	fmt.Fprintf(w, "  %-5s  %-11s  %-11s  %-15s  %s\n", "-----", "---", "----", "-----", "-----")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-5d  %-11s  %-11s  %-15s  %5.1f%%\n",
			r.Level,
			fmt.Sprintf("%dx%d", r.MapW, r.MapH),
			fmt.Sprintf("%dx%d", r.MaskW, r.MaskH),
			fmt.Sprintf("%.3f,%.3f", r.ScaleX, r.ScaleY),
			r.Solid*100,
		)
	}
}
