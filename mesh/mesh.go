// Package mesh defines the triangle geometry consumed by the
// rasterizer, plus a Wavefront OBJ decoder that resolves indexed
// geometry into the flat vertex records the rasterizer expects.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a single mesh vertex. Positions are homogeneous model-space
// coordinates; the third texture coordinate component is unused by the
// default shaders but carried through for shaders that want it.
// Vertices are immutable once constructed.
type Vertex struct {
	Position mgl32.Vec4
	TexCoord mgl32.Vec3
	Normal   mgl32.Vec3
}

// NewVertex creates a vertex with default texture coordinates (0,0,1)
// and a default normal (0,0,1).
func NewVertex(position mgl32.Vec4) Vertex {
	return Vertex{
		Position: position,
		TexCoord: mgl32.Vec3{0, 0, 1},
		Normal:   mgl32.Vec3{0, 0, 1},
	}
}

// Face is a single triangle. The rasterizer handles triangles only;
// polygonal source geometry must be triangulated by the loader.
type Face struct {
	Vertices [3]Vertex
}

// Mesh is a named, ordered sequence of triangles. It is supplied whole
// by a loader and read-only to the rendering core.
type Mesh struct {
	Name  string
	Faces []Face
}
