// Package shader provides ready-made raster.Shader implementations.
//
// All shaders here follow the same binding convention: the combined
// model-view-projection matrix is expected at matrix slot 0 of the
// uniform storage. Texturing shaders read the texture at logical slot 0
// and pass the mesh UV through varying Vec2 slot 0.
package shader

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/softpipe/softpipe/raster"
)

// Texture shades with a nearest-sampled texture lookup: matrix slot 0
// transforms positions, texture slot 0 supplies the color, alpha
// included.
type Texture struct{}

var _ raster.Shader = Texture{}

func (Texture) Vertex(in raster.VertexInput) raster.VertexOutput {
	mvp := in.Storage.Mat4(0)
	return raster.VertexOutput{
		Position: mvp.Mul4x1(in.Position),
		Vec2s:    []mgl32.Vec2{in.TexCoord.Vec2()},
	}
}

func (Texture) Fragment(in raster.FragmentInput) (mgl32.Vec4, bool) {
	uv := in.Vec2(0)
	return in.Storage.Texture2D(0).Sample(uv[0], uv[1]), true
}

// FlatColor fills every covered pixel with a fixed straight RGBA color.
// A translucent alpha exercises the transparency accumulator.
type FlatColor struct {
	Color mgl32.Vec4
}

var _ raster.Shader = FlatColor{}

func (FlatColor) Vertex(in raster.VertexInput) raster.VertexOutput {
	return raster.VertexOutput{Position: in.Storage.Mat4(0).Mul4x1(in.Position)}
}

func (s FlatColor) Fragment(raster.FragmentInput) (mgl32.Vec4, bool) {
	return s.Color, true
}

// Normals visualizes interpolated mesh normals, mapping each component
// from [-1, 1] to [0, 1]. Useful for inspecting geometry.
type Normals struct{}

var _ raster.Shader = Normals{}

func (Normals) Vertex(in raster.VertexInput) raster.VertexOutput {
	return raster.VertexOutput{
		Position: in.Storage.Mat4(0).Mul4x1(in.Position),
		Vec3s:    []mgl32.Vec3{in.Normal},
	}
}

func (Normals) Fragment(in raster.FragmentInput) (mgl32.Vec4, bool) {
	n := in.Vec3(0)
	return mgl32.Vec4{
		n[0]*0.5 + 0.5,
		n[1]*0.5 + 0.5,
		n[2]*0.5 + 0.5,
		1,
	}, true
}

// Lambert shades a texture with a single directional light. The light
// direction is read from scalar slots 0..2 of the uniform storage and
// must be normalized by the caller. Matrix slot 0 transforms positions,
// texture slot 0 supplies the base color.
type Lambert struct {
	// Ambient is the minimum diffuse term, keeping unlit faces from
	// going fully black. Zero is a valid value.
	Ambient float32
}

var _ raster.Shader = Lambert{}

func (Lambert) Vertex(in raster.VertexInput) raster.VertexOutput {
	return raster.VertexOutput{
		Position: in.Storage.Mat4(0).Mul4x1(in.Position),
		Vec2s:    []mgl32.Vec2{in.TexCoord.Vec2()},
		Vec3s:    []mgl32.Vec3{in.Normal},
	}
}

func (s Lambert) Fragment(in raster.FragmentInput) (mgl32.Vec4, bool) {
	uv := in.Vec2(0)
	base := in.Storage.Texture2D(0).Sample(uv[0], uv[1])

	light := mgl32.Vec3{in.Storage.F32(0), in.Storage.F32(1), in.Storage.F32(2)}
	diffuse := in.Vec3(0).Dot(light)
	if diffuse < s.Ambient {
		diffuse = s.Ambient
	}

	lit := base.Vec3().Mul(diffuse)
	return mgl32.Vec4{lit[0], lit[1], lit[2], base[3]}, true
}
