package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kiccas/common"
)

// drawImageRect stretches img over r. A nil image draws nothing.
func drawImageRect(dst, img *ebiten.Image, r common.Rect) {
	drawImageRectAlpha(dst, img, r, 1)
}

func drawImageRectAlpha(dst, img *ebiten.Image, r common.Rect, alpha float32) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawFull stretches img over the whole destination.
func drawFull(dst, img *ebiten.Image, alpha float32) {
	b := dst.Bounds()
	drawImageRectAlpha(dst, img, common.Rect{W: b.Dx(), H: b.Dy()}, alpha)
}

// subImage returns the part of img under r, clipped to img.
func subImage(img *ebiten.Image, r common.Rect) *ebiten.Image {
	return img.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)
}

// drawText draws s with its top-left corner at (x, y). Lines are separated
// by newlines.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + face.Metrics().HLineGap
	text.Draw(dst, s, face, op)
}

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
