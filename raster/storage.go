package raster

import "github.com/go-gl/mathgl/mgl32"

// Storage is the per-draw-call uniform binding table: matrices,
// scalars, textures, and an optional texture index remap, each
// addressed by small integer index.
//
// Setters replace the entire backing array; there are no partial
// updates, so callers must resupply the full binding set before every
// draw call. Getters assume the index is valid for the bindings of the
// current draw call; an out-of-range index is a programming error and
// panics, not a recoverable condition.
//
// Storage is read-only during a draw call and may be read concurrently
// by all rasterizer workers.
type Storage struct {
	mat4s          []mgl32.Mat4
	f32s           []float32
	textures       []*Texture2D
	textureIndices []int
}

// SetMat4s replaces the bound matrices.
func (s *Storage) SetMat4s(mat4s []mgl32.Mat4) {
	s.mat4s = mat4s
}

// Mat4 returns the matrix bound at index.
func (s *Storage) Mat4(index int) mgl32.Mat4 {
	return s.mat4s[index]
}

// SetF32s replaces the bound scalars.
func (s *Storage) SetF32s(f32s []float32) {
	s.f32s = f32s
}

// F32 returns the scalar bound at index.
func (s *Storage) F32(index int) float32 {
	return s.f32s[index]
}

// SetTexture2Ds replaces the bound textures.
func (s *Storage) SetTexture2Ds(textures []*Texture2D) {
	s.textures = textures
}

// SetTexture2DIndices replaces the texture index remap table. The
// table redirects a logical texture slot to a physical entry in the
// texture array, so two draw calls can each address "texture 0" while
// bound to different physical textures. An empty table means logical
// slots address the texture array directly.
func (s *Storage) SetTexture2DIndices(indices []int) {
	s.textureIndices = indices
}

// Texture2D returns the texture bound at the given logical slot,
// going through the index remap table when one is set.
func (s *Storage) Texture2D(index int) *Texture2D {
	if len(s.textureIndices) > 0 {
		index = s.textureIndices[index]
	}
	return s.textures[index]
}
