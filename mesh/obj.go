package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objIndex is one vertex reference from an "f" directive. Components
// are the 1-based indices into the position/texcoord/normal pools.
type objIndex struct {
	position int
	texCoord int
	normal   int
}

// objMesh collects faces for one "o" object before index resolution.
type objMesh struct {
	name  string
	faces [][]objIndex
}

// DecodeOBJ reads Wavefront OBJ data and returns the meshes it
// describes, with all indices resolved to flat Vertex records.
//
// Supported directives: v, vt, vn, f, o. Faces with more than three
// vertices are fan-triangulated. Material and group directives
// (mtllib, usemtl, g) and anything unrecognized are skipped, as are
// malformed lines; OBJ files in the wild are too inconsistent to treat
// these as fatal. Missing vt or vn pools fall back to a single default
// entry, matching the defaults of NewVertex.
//
// Index resolution is the loader's job: the rendering core only ever
// sees flat vertices.
func DecodeOBJ(r io.Reader) ([]*Mesh, error) {
	d := objDecoder{
		// Default pools so faces like "f 1 2 3" (no vt/vn) resolve.
		texCoords: []mgl32.Vec3{{0, 0, 1}},
		normals:   []mgl32.Vec3{{0, 0, 1}},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		d.parseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: reading obj: %w", err)
	}

	return d.resolve()
}

type objDecoder struct {
	positions []mgl32.Vec4
	texCoords []mgl32.Vec3
	normals   []mgl32.Vec3
	meshes    []*objMesh

	// sawTexCoords/sawNormals distinguish the default pool entry from
	// real data: real entries are appended after the default.
	sawTexCoords bool
	sawNormals   bool
}

func (d *objDecoder) parseLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "v":
		if p, ok := parseVec4(fields[1:], 1); ok {
			d.positions = append(d.positions, p)
		}
	case "vt":
		if t, ok := parseVec3(fields[1:], 2, 1); ok {
			if !d.sawTexCoords {
				d.texCoords = d.texCoords[:0]
				d.sawTexCoords = true
			}
			d.texCoords = append(d.texCoords, t)
		}
	case "vn":
		if n, ok := parseVec3(fields[1:], 3, 0); ok {
			if !d.sawNormals {
				d.normals = d.normals[:0]
				d.sawNormals = true
			}
			d.normals = append(d.normals, n)
		}
	case "f":
		d.parseFace(fields[1:])
	case "o":
		name := strings.TrimSpace(strings.TrimPrefix(line, "o"))
		d.meshes = append(d.meshes, &objMesh{name: name})
	default:
		// Comments, mtllib/usemtl/g, and unknown directives.
	}
}

func (d *objDecoder) parseFace(fields []string) {
	if len(fields) < 3 {
		return
	}

	indices := make([]objIndex, 0, len(fields))
	for _, f := range fields {
		idx, ok := parseFaceIndex(f)
		if !ok {
			return
		}
		indices = append(indices, idx)
	}

	if len(d.meshes) == 0 {
		d.meshes = append(d.meshes, &objMesh{})
	}
	d.meshes[len(d.meshes)-1].faces = append(d.meshes[len(d.meshes)-1].faces, indices)
}

// parseFaceIndex parses one "p", "p/t", "p/t/n" or "p//n" reference.
// Missing texcoord/normal indices default to 1 (the default pool entry).
func parseFaceIndex(s string) (objIndex, bool) {
	parts := strings.Split(s, "/")

	p, err := strconv.Atoi(parts[0])
	if err != nil || p < 1 {
		return objIndex{}, false
	}

	idx := objIndex{position: p, texCoord: 1, normal: 1}
	if len(parts) > 1 && parts[1] != "" {
		if t, err := strconv.Atoi(parts[1]); err == nil && t >= 1 {
			idx.texCoord = t
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if n, err := strconv.Atoi(parts[2]); err == nil && n >= 1 {
			idx.normal = n
		}
	}
	return idx, true
}

// resolve converts the collected index faces into flat meshes,
// fan-triangulating polygons.
func (d *objDecoder) resolve() ([]*Mesh, error) {
	meshes := make([]*Mesh, 0, len(d.meshes))
	for _, om := range d.meshes {
		m := &Mesh{Name: om.name}
		for _, face := range om.faces {
			for i := 2; i < len(face); i++ {
				tri, err := d.resolveTriangle(face[0], face[i-1], face[i])
				if err != nil {
					return nil, err
				}
				m.Faces = append(m.Faces, tri)
			}
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

func (d *objDecoder) resolveTriangle(a, b, c objIndex) (Face, error) {
	var face Face
	for i, idx := range [3]objIndex{a, b, c} {
		v, err := d.resolveVertex(idx)
		if err != nil {
			return Face{}, err
		}
		face.Vertices[i] = v
	}
	return face, nil
}

func (d *objDecoder) resolveVertex(idx objIndex) (Vertex, error) {
	if idx.position > len(d.positions) {
		return Vertex{}, fmt.Errorf("mesh: obj face references position %d of %d", idx.position, len(d.positions))
	}
	if idx.texCoord > len(d.texCoords) {
		return Vertex{}, fmt.Errorf("mesh: obj face references texcoord %d of %d", idx.texCoord, len(d.texCoords))
	}
	if idx.normal > len(d.normals) {
		return Vertex{}, fmt.Errorf("mesh: obj face references normal %d of %d", idx.normal, len(d.normals))
	}
	return Vertex{
		Position: d.positions[idx.position-1],
		TexCoord: d.texCoords[idx.texCoord-1],
		Normal:   d.normals[idx.normal-1],
	}, nil
}

// parseVec4 parses x y z [w] with the given default w.
func parseVec4(fields []string, defaultW float32) (mgl32.Vec4, bool) {
	if len(fields) < 3 {
		return mgl32.Vec4{}, false
	}
	var v mgl32.Vec4
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec4{}, false
		}
		v[i] = float32(f)
	}
	v[3] = defaultW
	if len(fields) > 3 {
		if f, err := strconv.ParseFloat(fields[3], 32); err == nil {
			v[3] = float32(f)
		}
	}
	return v, true
}

// parseVec3 parses at least need components, filling the rest with def.
func parseVec3(fields []string, need int, def float32) (mgl32.Vec3, bool) {
	if len(fields) < need {
		return mgl32.Vec3{}, false
	}
	v := mgl32.Vec3{def, def, def}
	n := min(len(fields), 3)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, false
		}
		v[i] = float32(f)
	}
	return v, true
}
