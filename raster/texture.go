package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// Texture2D is an immutable width×height array of RGBA8 texels.
// Sampling is nearest-neighbor with v flipped so v=0 addresses the
// bottom row, and coordinates clamped to the texture edges.
type Texture2D struct {
	pix    []uint8 // RGBA, 4 bytes per texel, row-major from the top
	width  int
	height int
}

// NewTexture2D builds a texture from a decoded image. The image is
// copied into straight (non-premultiplied) RGBA8 layout; the texture
// does not retain img.
func NewTexture2D(img image.Image) *Texture2D {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(nrgba, image.Point{}, img, b, draw.Src, nil)
	return &Texture2D{
		pix:    nrgba.Pix,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

// Width returns the texture width in texels.
func (t *Texture2D) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture2D) Height() int { return t.height }

// Sample returns the texel nearest to (u, v) as straight RGBA in
// [0, 1]. v=0 maps to the bottom row. Coordinates outside [0, 1] clamp
// to the edge texels.
func (t *Texture2D) Sample(u, v float32) mgl32.Vec4 {
	x := int(u * float32(t.width-1))
	y := t.height - int(v*float32(t.height-1)) - 1

	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)

	i := (y*t.width + x) * 4
	return mgl32.Vec4{
		float32(t.pix[i+0]) / 255,
		float32(t.pix[i+1]) / 255,
		float32(t.pix[i+2]) / 255,
		float32(t.pix[i+3]) / 255,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
