package raster

import "github.com/go-gl/mathgl/mgl32"

// Shader is the programmable stage pair invoked by the rasterizer, once
// per vertex and once per covered pixel.
//
// Both stages must be pure: they are called concurrently from every
// rasterizer worker and may only read from Storage, never write to it
// or to any other shared state.
//
// A varying written by Vertex at slot i must be read by Fragment at the
// same slot and component count; mismatched access is a caller error.
type Shader interface {
	// Vertex transforms one vertex into clip space and populates any
	// varyings the paired fragment stage expects.
	Vertex(in VertexInput) VertexOutput

	// Fragment shades one covered pixel. Returning ok=false discards
	// the fragment: no color write and no depth effect.
	Fragment(in FragmentInput) (color mgl32.Vec4, ok bool)
}

// VertexInput carries one vertex's attributes into the vertex stage.
type VertexInput struct {
	Position mgl32.Vec4
	TexCoord mgl32.Vec3
	Normal   mgl32.Vec3

	Storage *Storage
}

// VertexOutput is the result of the vertex stage: a clip-space position
// plus independently sized varying arrays. Produced fresh per vertex
// per draw call and consumed only within that draw call.
type VertexOutput struct {
	Position mgl32.Vec4

	Vec2s []mgl32.Vec2
	Vec3s []mgl32.Vec3
	Vec4s []mgl32.Vec4
}

// FragmentInput gives the fragment stage perspective-correct access to
// the triangle's varyings at one pixel.
type FragmentInput struct {
	outputs *[3]VertexOutput
	weights mgl32.Vec3

	Storage *Storage
}

// Position returns the interpolated clip-space position.
func (in FragmentInput) Position() mgl32.Vec4 {
	w := in.weights
	o := in.outputs
	return o[0].Position.Mul(w[0]).
		Add(o[1].Position.Mul(w[1])).
		Add(o[2].Position.Mul(w[2]))
}

// Vec2 returns the interpolated two-component varying at slot index.
func (in FragmentInput) Vec2(index int) mgl32.Vec2 {
	w := in.weights
	o := in.outputs
	return o[0].Vec2s[index].Mul(w[0]).
		Add(o[1].Vec2s[index].Mul(w[1])).
		Add(o[2].Vec2s[index].Mul(w[2]))
}

// Vec3 returns the interpolated three-component varying at slot index.
func (in FragmentInput) Vec3(index int) mgl32.Vec3 {
	w := in.weights
	o := in.outputs
	return o[0].Vec3s[index].Mul(w[0]).
		Add(o[1].Vec3s[index].Mul(w[1])).
		Add(o[2].Vec3s[index].Mul(w[2]))
}

// Vec4 returns the interpolated four-component varying at slot index.
func (in FragmentInput) Vec4(index int) mgl32.Vec4 {
	w := in.weights
	o := in.outputs
	return o[0].Vec4s[index].Mul(w[0]).
		Add(o[1].Vec4s[index].Mul(w[1])).
		Add(o[2].Vec4s[index].Mul(w[2]))
}
