package raster

import "github.com/go-gl/mathgl/mgl32"

// PackRGB packs a straight RGB color with components in [0, 1] into a
// 0xRRGGBB value (8 bits per channel). Components clamp to [0, 1].
func PackRGB(c mgl32.Vec3) uint32 {
	r := uint32(clamp01(c[0]) * 255)
	g := uint32(clamp01(c[1]) * 255)
	b := uint32(clamp01(c[2]) * 255)
	return r<<16 | g<<8 | b
}

// UnpackRGB expands a packed 0xRRGGBB value into RGB components in
// [0, 1].
func UnpackRGB(p uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(p>>16&0xff) / 255,
		float32(p>>8&0xff) / 255,
		float32(p&0xff) / 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
