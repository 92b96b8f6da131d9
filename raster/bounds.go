package raster

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// bounds is an inclusive integer pixel rectangle.
type bounds struct {
	minX, minY int
	maxX, maxY int
}

// triangleBounds returns the integer pixel AABB of the screen-space
// triangle pts, clamped to clip. ok is false when the clamped box is
// empty (triangle entirely outside the clip region).
func triangleBounds(pts [3]mgl32.Vec2, clip bounds) (bounds, bool) {
	minX := math32.Min(pts[0][0], math32.Min(pts[1][0], pts[2][0]))
	maxX := math32.Max(pts[0][0], math32.Max(pts[1][0], pts[2][0]))
	minY := math32.Min(pts[0][1], math32.Min(pts[1][1], pts[2][1]))
	maxY := math32.Max(pts[0][1], math32.Max(pts[1][1], pts[2][1]))

	b := bounds{
		minX: clampInt(int(math32.Floor(minX)), clip.minX, clip.maxX),
		maxX: clampInt(int(math32.Ceil(maxX)), clip.minX, clip.maxX),
		minY: clampInt(int(math32.Floor(minY)), clip.minY, clip.maxY),
		maxY: clampInt(int(math32.Ceil(maxY)), clip.minY, clip.maxY),
	}

	if maxX < float32(clip.minX) || minX > float32(clip.maxX) ||
		maxY < float32(clip.minY) || minY > float32(clip.maxY) {
		return bounds{}, false
	}
	return b, true
}
