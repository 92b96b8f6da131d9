package raster

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// opaqueAlpha is the threshold at or above which a fragment is
	// treated as fully opaque and routed to the background slot.
	opaqueAlpha = 0.9999

	// minAlpha is the threshold at or below which a fragment is
	// discarded before accumulation.
	minAlpha = 0.0001
)

// Fragment is one shaded sample: straight RGBA color with alpha in
// [0, 1], plus its depth.
type Fragment struct {
	Color mgl32.Vec4
	Depth float32
}

// cell is the per-pixel fragment accumulator: the nearest fully opaque
// fragment found so far (the background, which doubles as the depth
// reference), plus an unordered list of translucent fragments.
//
// The cell trusts its caller's depth test; add never compares depths.
// The translucent slice keeps its capacity across frames so steady-state
// rendering does not allocate.
type cell struct {
	background Fragment
	frags      []Fragment
}

func backgroundFragment(color mgl32.Vec3) Fragment {
	return Fragment{
		Color: mgl32.Vec4{color[0], color[1], color[2], 1},
		Depth: math32.MaxFloat32,
	}
}

// add routes a fragment to the background slot when it is opaque, or
// appends it to the translucent list otherwise.
func (c *cell) add(f Fragment) {
	if f.Color[3] >= opaqueAlpha {
		c.background = f
	} else {
		c.frags = append(c.frags, f)
	}
}

// resolve composites the cell into a single straight RGB color and
// resets it to the clear state for the next frame.
//
// Translucent fragments behind the background are dropped; the rest are
// blended back to front (farthest first) with the "over" operator.
func (c *cell) resolve(clearColor mgl32.Vec3) mgl32.Vec3 {
	if len(c.frags) > 1 {
		slices.SortFunc(c.frags, func(a, b Fragment) int {
			return cmp.Compare(b.Depth, a.Depth)
		})
	}

	result := c.background.Color.Vec3()
	backgroundDepth := c.background.Depth

	for _, f := range c.frags {
		if f.Depth > backgroundDepth {
			continue
		}
		a := f.Color[3]
		result = f.Color.Vec3().Mul(a).Add(result.Mul(1 - a))
	}

	c.frags = c.frags[:0]
	c.background = backgroundFragment(clearColor)

	return result
}
