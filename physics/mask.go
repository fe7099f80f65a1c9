package physics

import (
	"image"
	"image/color"
)

// Mask classifies pixels of a collision image. Pure black (r, g and b all
// zero) is solid terrain; every other color, including near-black, is empty.
// Alpha is ignored.
type Mask struct {
	img    image.Image
	bounds image.Rectangle
}

func NewMask(img image.Image) *Mask {
	if img == nil {
		return nil
	}
	return &Mask{img: img, bounds: img.Bounds()}
}

func (m *Mask) Width() int {
	if m == nil {
		return 0
	}
	return m.bounds.Dx()
}

func (m *Mask) Height() int {
	if m == nil {
		return 0
	}
	return m.bounds.Dy()
}

// IsSolid reports whether the mask pixel at (x, y) is solid. Coordinates are
// relative to the image origin. Anything outside the image is empty.
func (m *Mask) IsSolid(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.bounds.Dx() || y >= m.bounds.Dy() {
		return false
	}
	x += m.bounds.Min.X
	y += m.bounds.Min.Y

	switch img := m.img.(type) {
	case *image.NRGBA:
		i := img.PixOffset(x, y)
		return img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0
	case *image.RGBA:
		// Stored channels are used as-is so a transparent pixel keeps its
		// color instead of collapsing to black.
		i := img.PixOffset(x, y)
		return img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0
	case *image.Gray:
		return img.GrayAt(x, y).Y == 0
	case *image.Paletted:
		return isBlack(img.Palette[img.ColorIndexAt(x, y)])
	}
	return isBlack(m.img.At(x, y))
}

// SolidRatio returns the fraction of mask pixels that are solid.
func (m *Mask) SolidRatio() float64 {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 {
		return 0
	}
	solid := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.IsSolid(x, y) {
				solid++
			}
		}
	}
	return float64(solid) / float64(w*h)
}

// isBlack reads the stored channels of c. Non-premultiplied colors keep their
// RGB under any alpha; premultiplied colors report what they store.
func isBlack(c color.Color) bool {
	switch v := c.(type) {
	case nil:
		return false
	case color.NRGBA:
		return v.R == 0 && v.G == 0 && v.B == 0
	case color.NRGBA64:
		return v.R == 0 && v.G == 0 && v.B == 0
	}
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}
