package mesh

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDecodeOBJ_Triangle(t *testing.T) {
	const src = `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`
	meshes, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	m := meshes[0]
	if len(m.Faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(m.Faces))
	}

	v1 := m.Faces[0].Vertices[1]
	if v1.Position != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Errorf("vertex 1 position = %v, want (1,0,0,1)", v1.Position)
	}
	if v1.TexCoord != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("vertex 1 texcoord = %v, want (1,0,1)", v1.TexCoord)
	}
	if v1.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("vertex 1 normal = %v, want (0,0,1)", v1.Normal)
	}
}

func TestDecodeOBJ_DefaultsWhenNoTexCoordsOrNormals(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	meshes, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	v := meshes[0].Faces[0].Vertices[0]
	if v.TexCoord != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("default texcoord = %v, want (0,0,1)", v.TexCoord)
	}
	if v.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("default normal = %v, want (0,0,1)", v.Normal)
	}
}

func TestDecodeOBJ_FanTriangulation(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	meshes, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	m := meshes[0]
	if len(m.Faces) != 2 {
		t.Fatalf("quad produced %d triangles, want 2", len(m.Faces))
	}
	// Fan: (1,2,3) and (1,3,4).
	if m.Faces[1].Vertices[0].Position != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("second triangle should start at the fan pivot")
	}
	if m.Faces[1].Vertices[2].Position != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("second triangle should end at vertex 4")
	}
}

func TestDecodeOBJ_Objects(t *testing.T) {
	const src = `
o first
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o second
v 0 0 1
v 1 0 1
v 0 1 1
f 4 5 6
`
	meshes, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}
	if meshes[0].Name != "first" || meshes[1].Name != "second" {
		t.Errorf("names = %q, %q; want first, second", meshes[0].Name, meshes[1].Name)
	}
	// Position pools are file-global across objects.
	if meshes[1].Faces[0].Vertices[0].Position != (mgl32.Vec4{0, 0, 1, 1}) {
		t.Errorf("second object vertex = %v, want (0,0,1,1)", meshes[1].Faces[0].Vertices[0].Position)
	}
}

func TestDecodeOBJ_SkipsUnsupportedAndMalformed(t *testing.T) {
	const src = `
mtllib scene.mtl
v 0 0 0
v 1 0 0
v 0 1 0
v not a number
usemtl shiny
g group1
f 1 2 3
f 1 2
f 1 2 nonsense
`
	meshes, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if len(meshes) != 1 || len(meshes[0].Faces) != 1 {
		t.Fatalf("got %d meshes / %d faces, want 1 / 1", len(meshes), len(meshes[0].Faces))
	}
}

func TestDecodeOBJ_OutOfRangeIndex(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
f 1 2 3
`
	if _, err := DecodeOBJ(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for out-of-range position index")
	}
}

func TestDecodeOBJ_NormalOnlyReference(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 1 0 0
f 1//1 2//1 3//1
`
	meshes, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	v := meshes[0].Faces[0].Vertices[0]
	if v.Normal != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("normal = %v, want (1,0,0)", v.Normal)
	}
	if v.TexCoord != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("texcoord = %v, want default (0,0,1)", v.TexCoord)
	}
}
