// Package raster implements a CPU triangle rasterizer with a
// programmable vertex/fragment shader pair, perspective-correct
// interpolation, and order-independent transparency accumulation.
//
// The pixel grid is split into contiguous horizontal row bands, one per
// worker. Every triangle is rasterized independently against every
// band; bands never overlap, so workers share the triangle list and
// Storage read-only and own their band of accumulator cells
// exclusively. A frame is any number of DrawMesh calls followed by one
// Resolve, which composites transparency and resets the accumulator.
package raster

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/softpipe/softpipe/internal/parallel"
	"github.com/softpipe/softpipe/mesh"
)

// degenerateArea is the signed screen-space area magnitude below which
// a triangle is treated as having no coverage. Guards the barycentric
// division.
const degenerateArea = 1e-6

// viewDirection is the fixed direction backface culling tests against.
var viewDirection = mgl32.Vec3{0, 0, 1}

// Options configure a Rasterizer. Immutable for its lifetime.
type Options struct {
	// CullBackfaces discards triangles whose clip-space winding faces
	// away from the view direction.
	CullBackfaces bool

	// BackgroundColor is the straight RGB clear color, components in
	// [0, 1].
	BackgroundColor mgl32.Vec3
}

// Rasterizer converts shaded triangle meshes into per-pixel fragments
// and resolves them into a packed color buffer.
//
// All exported methods must be called from a single goroutine; the
// rasterizer parallelizes internally across its worker pool.
type Rasterizer struct {
	width  int
	height int
	opts   Options

	storage  Storage
	viewport mgl32.Mat4

	cells []cell
	bands []parallel.Band
	pool  *parallel.Pool
}

// New creates a rasterizer for a width×height pixel grid. The worker
// pool defaults to one worker per CPU.
func New(width, height int, opts Options) *Rasterizer {
	pool := parallel.NewPool(0)

	r := &Rasterizer{
		width:    width,
		height:   height,
		opts:     opts,
		viewport: viewportMatrix(float32(width), float32(height)),
		cells:    make([]cell, width*height),
		bands:    parallel.Bands(height, pool.Workers()),
		pool:     pool,
	}
	for i := range r.cells {
		r.cells[i].background = backgroundFragment(opts.BackgroundColor)
	}
	return r
}

// Close shuts down the worker pool. The rasterizer must not be used
// after Close.
func (r *Rasterizer) Close() {
	r.pool.Close()
}

// Width returns the pixel grid width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the pixel grid height.
func (r *Rasterizer) Height() int { return r.height }

// Storage returns the uniform binding table. Callers must bind a
// complete set before each DrawMesh and must not mutate it while a
// draw call is in flight.
func (r *Rasterizer) Storage() *Storage {
	return &r.storage
}

// viewportMatrix maps clip-space x,y from [-1,1]² to pixel coordinates
// with inverted y; z and w pass through untouched.
func viewportMatrix(width, height float32) mgl32.Mat4 {
	return mgl32.Mat4{
		width / 2, 0, 0, 0, // column 0
		0, -height / 2, 0, 0, // column 1
		0, 0, 1, 0, // column 2
		width / 2, height / 2, 0, 1, // column 3
	}
}

// shadedTriangle is one face after the vertex stage: clip-space
// positions plus the full vertex outputs for varying interpolation.
type shadedTriangle struct {
	clip [3]mgl32.Vec4
	outs [3]VertexOutput
}

// DrawMesh rasterizes every triangle of m with the given shader,
// accumulating fragments into the per-pixel cells. Draw calls
// accumulate across a frame until Resolve. DrawMesh blocks until the
// whole mesh has been rasterized.
func (r *Rasterizer) DrawMesh(m *mesh.Mesh, sh Shader) {
	tris := make([]shadedTriangle, len(m.Faces))
	for i := range m.Faces {
		face := &m.Faces[i]
		for j := 0; j < 3; j++ {
			v := &face.Vertices[j]
			out := sh.Vertex(VertexInput{
				Position: v.Position,
				TexCoord: v.TexCoord,
				Normal:   v.Normal,
				Storage:  &r.storage,
			})
			tris[i].clip[j] = out.Position
			tris[i].outs[j] = out
		}
	}

	r.pool.ForEach(len(r.bands), func(bi int) {
		band := r.bands[bi]
		for ti := range tris {
			r.drawTriangle(&tris[ti], band, sh)
		}
	})
}

func (r *Rasterizer) drawTriangle(t *shadedTriangle, band parallel.Band, sh Shader) {
	if outsideFrustum(&t.clip) {
		return
	}
	if r.opts.CullBackfaces && isBackface(&t.clip) {
		return
	}

	// Viewport transform and perspective divide to 2D screen points.
	var pts [3]mgl32.Vec2
	for i := 0; i < 3; i++ {
		s := r.viewport.Mul4x1(t.clip[i])
		pts[i] = mgl32.Vec2{s[0] / s[3], s[1] / s[3]}
	}

	clip := bounds{minX: 0, minY: band.Start, maxX: r.width - 1, maxY: band.End - 1}
	bb, ok := triangleBounds(pts, clip)
	if !ok {
		return
	}

	area := edgeArea(pts[0], pts[1], pts[2])
	if math32.Abs(area) < degenerateArea {
		// Degenerate triangle: no coverage.
		return
	}
	invArea := 1 / area

	for y := bb.minY; y <= bb.maxY; y++ {
		row := y * r.width
		for x := bb.minX; x <= bb.maxX; x++ {
			p := mgl32.Vec2{float32(x), float32(y)}
			bary := barycentric(pts, p, invArea)
			if bary[0] < 0 || bary[1] < 0 || bary[2] < 0 {
				continue
			}

			// Depth interpolates with the screen-space weights; the
			// opaque background doubles as the depth buffer, so
			// anything at or behind it is skipped before shading.
			depth := bary[0]*t.clip[0][2] + bary[1]*t.clip[1][2] + bary[2]*t.clip[2][2]
			c := &r.cells[row+x]
			if depth >= c.background.Depth {
				continue
			}

			color, ok := sh.Fragment(FragmentInput{
				outputs: &t.outs,
				weights: perspectiveWeights(bary, &t.clip),
				Storage: &r.storage,
			})
			if !ok || color[3] <= minAlpha {
				continue
			}

			c.add(Fragment{Color: color, Depth: depth})
		}
	}
}

// edgeArea returns twice the signed area of triangle abc. The factor of
// two cancels against the sub-triangle areas in barycentric.
func edgeArea(a, b, c mgl32.Vec2) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

// barycentric computes the screen-space barycentric weights of p via
// the signed-area method. Any negative component means p is outside.
func barycentric(pts [3]mgl32.Vec2, p mgl32.Vec2, invArea float32) mgl32.Vec3 {
	a, b, c := pts[0], pts[1], pts[2]
	alpha := ((b[0]-p[0])*(c[1]-p[1]) - (c[0]-p[0])*(b[1]-p[1])) * invArea
	beta := ((c[0]-p[0])*(a[1]-p[1]) - (a[0]-p[0])*(c[1]-p[1])) * invArea
	return mgl32.Vec3{alpha, beta, 1 - alpha - beta}
}

// perspectiveWeights converts screen-space barycentric weights into
// perspective-correct ones by dividing each by its vertex's clip-space
// w and renormalizing to sum to one.
func perspectiveWeights(bary mgl32.Vec3, clip *[3]mgl32.Vec4) mgl32.Vec3 {
	w := mgl32.Vec3{
		bary[0] / clip[0][3],
		bary[1] / clip[1][3],
		bary[2] / clip[2][3],
	}
	return w.Mul(1 / (w[0] + w[1] + w[2]))
}

// outsideFrustum reports whether all three vertices lie beyond the same
// clip-space half-space (x, y, or z outside [-w, w] on the same side).
// This is a conservative reject: straddling triangles rasterize in full
// and rely on the per-pixel screen bounds clamp.
func outsideFrustum(clip *[3]mgl32.Vec4) bool {
	for axis := 0; axis < 3; axis++ {
		low, high := true, true
		for _, v := range clip {
			if v[axis] >= -v[3] {
				low = false
			}
			if v[axis] <= v[3] {
				high = false
			}
		}
		if low || high {
			return true
		}
	}
	return false
}

// isBackface reports whether the triangle's clip-space normal faces
// away from the view direction.
func isBackface(clip *[3]mgl32.Vec4) bool {
	e1 := clip[1].Sub(clip[0]).Vec3()
	e2 := clip[2].Sub(clip[0]).Vec3()
	return e1.Cross(e2).Dot(viewDirection) <= 0
}

// Resolve composites every pixel's accumulated fragments into dst as
// packed 0xRRGGBB values, row-major from the top-left, and resets the
// accumulator to the clear state. dst must hold exactly width*height
// entries.
//
// Resolve reflects all draw calls issued before it, and only those.
// With no intervening draws, a second Resolve yields the background
// color everywhere.
func (r *Rasterizer) Resolve(dst []uint32) error {
	if len(dst) != r.width*r.height {
		return fmt.Errorf("raster: destination buffer length %d does not match %d×%d pixels", len(dst), r.width, r.height)
	}

	bg := r.opts.BackgroundColor
	r.pool.ForEach(len(r.bands), func(bi int) {
		band := r.bands[bi]
		for i := band.Start * r.width; i < band.End*r.width; i++ {
			dst[i] = PackRGB(r.cells[i].resolve(bg))
		}
	})
	return nil
}
