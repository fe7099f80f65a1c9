package main

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func halfSolid(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if y >= h/2 {
				c = color.NRGBA{A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestMeasure(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 400, 200))

	r, err := measure(2, bg, halfSolid(200, 100))
	require.NoError(t, err)

	assert.Equal(t, 2, r.Level)
	assert.Equal(t, 400, r.MapW)
	assert.Equal(t, 200, r.MapH)
	assert.Equal(t, 200, r.MaskW)
	assert.Equal(t, 100, r.MaskH)
	assert.InDelta(t, 0.5, r.ScaleX, 1e-6)
	assert.InDelta(t, 0.5, r.ScaleY, 1e-6)
	assert.InDelta(t, 0.5, r.Solid, 1e-9)
}

func TestMeasureEmptyBackground(t *testing.T) {
	_, err := measure(1, image.NewRGBA(image.Rect(0, 0, 0, 0)), halfSolid(10, 10))
	require.Error(t, err)
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	printRows(&buf, []row{{Level: 1, MapW: 400, MapH: 200, MaskW: 200, MaskH: 100, ScaleX: 0.5, ScaleY: 0.5, Solid: 0.25}})

	out := buf.String()
	assert.Contains(t, out, "Level")
	assert.Contains(t, out, "400x200")
	assert.Contains(t, out, "200x100")
	assert.Contains(t, out, "0.500,0.500")
	assert.Contains(t, out, "25.0%")
}
