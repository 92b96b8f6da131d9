package softpipe

import (
	"time"

	"github.com/softpipe/softpipe/mesh"
	"github.com/softpipe/softpipe/raster"
)

// Renderer is the top-level frame orchestrator: rasterize to the
// destination buffer, then post-process it. The two stages always run
// in that order and neither is skipped, so post-processing sees the
// fully resolved, depth- and alpha-composited image.
type Renderer struct {
	width  int
	height int

	ras  *raster.Rasterizer
	post *PostProcessor
}

// New creates a renderer for a width×height pixel grid.
func New(width, height int, opts Options) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		ras:    raster.New(width, height, opts.Raster),
		post:   NewPostProcessor(width, height, opts.Post),
	}
}

// Close shuts down the renderer's worker pools. The renderer must not
// be used after Close.
func (r *Renderer) Close() {
	r.ras.Close()
	r.post.Close()
}

// Width returns the pixel grid width.
func (r *Renderer) Width() int { return r.width }

// Height returns the pixel grid height.
func (r *Renderer) Height() int { return r.height }

// Storage returns the uniform binding table. A complete binding set
// must be supplied before each DrawMesh call.
func (r *Renderer) Storage() *raster.Storage {
	return r.ras.Storage()
}

// DrawMesh rasterizes m with the given shader into the current frame.
// Draw calls apply in the order issued.
func (r *Renderer) DrawMesh(m *mesh.Mesh, sh raster.Shader) {
	r.ras.DrawMesh(m, sh)
}

// Render resolves the current frame into dst as packed 0xRRGGBB pixels
// (row-major, top-left origin) and applies post-processing in place.
// dst must hold exactly Width()*Height() entries; rendering is aborted
// otherwise with no partial output. Render resets the frame state, so
// the next DrawMesh starts a new frame.
func (r *Renderer) Render(dst []uint32) error {
	start := time.Now()
	if err := r.ras.Resolve(dst); err != nil {
		return err
	}
	resolved := time.Now()

	if err := r.post.Process(dst); err != nil {
		return err
	}

	logger().Debug("frame rendered",
		"rasterize", resolved.Sub(start),
		"postprocess", time.Since(resolved))
	return nil
}
