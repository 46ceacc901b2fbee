package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

// OBJ mesh errors.
var (
	ErrIndexOutOfRange = errors.New("OBJ index out of range")
	ErrNoFaces         = errors.New("OBJ has no faces")
)

// absentIndex is what the decoder stores for an omitted uv or normal reference.
const absentIndex = math.MaxUint32

// DecodeOBJ decodes OBJ data and the concatenated text of its MTL libraries.
// The decoder needs an object statement before the first face, so one named
// after the model is prepended.
func DecodeOBJ(name string, objData, mtlData []byte) (*obj.Decoder, error) {
	header := strings.NewReader("o " + name + "\n")
	dec, err := obj.DecodeReader(io.MultiReader(header, bytes.NewReader(objData)), bytes.NewReader(mtlData))
	if err != nil {
		return nil, err
	}
	return dec, nil
}

// corner is one resolved face corner. Missing uv or normal is -1.
type corner struct {
	position int
	uv       int
	normal   int
}

// faceGroup collects the faces of one material in file order.
type faceGroup struct {
	material string
	faces    []obj.Face
}

// BuildMeshes creates one mesh per material used by the decoded faces.
//
// Polygons are fan-triangulated. Corners sharing the same (position, uv,
// normal) triple are merged. UVs are flipped vertically because images are
// uploaded with a top-left origin. Corners without a normal get the
// area-weighted average of the faces that use them.
func BuildMeshes(dec *obj.Decoder) ([]*Mesh, error) {
	var groups []*faceGroup
	byMaterial := make(map[string]*faceGroup)
	for _, o := range dec.Objects {
		for _, f := range o.Faces {
			g, ok := byMaterial[f.Material]
			if !ok {
				g = &faceGroup{material: f.Material}
				byMaterial[f.Material] = g
				groups = append(groups, g)
			}
			g.faces = append(g.faces, f)
		}
	}
	if len(groups) == 0 {
		return nil, ErrNoFaces
	}

	meshes := make([]*Mesh, 0, len(groups))
	for _, g := range groups {
		m, err := buildGroup(dec, g)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", g.material, err)
		}
		if m != nil {
			meshes = append(meshes, m)
		}
	}
	return meshes, nil
}

func buildGroup(dec *obj.Decoder, g *faceGroup) (*Mesh, error) {
	var vertices []Vertex
	var indices []uint32
	lookup := make(map[corner]uint32)
	needsNormal := make(map[uint32]bool)

	for _, f := range g.faces {
		if len(f.Vertices) < 3 {
			continue
		}
		ids := make([]uint32, len(f.Vertices))
		for i := range f.Vertices {
			c, err := resolveCorner(dec, f, i)
			if err != nil {
				return nil, err
			}
			idx, ok := lookup[c]
			if !ok {
				idx = uint32(len(vertices))
				lookup[c] = idx
				vertices = append(vertices, cornerVertex(dec, c))
				if c.normal < 0 {
					needsNormal[idx] = true
				}
			}
			ids[i] = idx
		}
		for i := 1; i+1 < len(ids); i++ {
			indices = append(indices, ids[0], ids[i], ids[i+1])
		}
	}

	if len(vertices) == 0 {
		return nil, nil
	}
	if len(needsNormal) > 0 {
		accumulateFaceNormals(vertices, indices, needsNormal)
	}

	return &Mesh{
		Name:     g.material,
		Vertices: vertices,
		Indices:  indices,
	}, nil
}

func resolveCorner(dec *obj.Decoder, f obj.Face, i int) (corner, error) {
	c := corner{uv: -1, normal: -1}
	var err error
	if c.position, err = checkIndex(f.Vertices[i], len(dec.Vertices)/3); err != nil {
		return corner{}, err
	}
	if i < len(f.Uvs) && f.Uvs[i] != absentIndex && f.Uvs[i] >= 0 {
		if c.uv, err = checkIndex(f.Uvs[i], len(dec.Uvs)/2); err != nil {
			return corner{}, err
		}
	}
	if i < len(f.Normals) && f.Normals[i] != absentIndex && f.Normals[i] >= 0 {
		if c.normal, err = checkIndex(f.Normals[i], len(dec.Normals)/3); err != nil {
			return corner{}, err
		}
	}
	return c, nil
}

func checkIndex(idx, count int) (int, error) {
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, idx+1, count)
	}
	return idx, nil
}

func cornerVertex(dec *obj.Decoder, c corner) Vertex {
	p := dec.Vertices[3*c.position:]
	v := Vertex{Position: mgl32.Vec3{p[0], p[1], p[2]}}
	if c.uv >= 0 {
		uv := dec.Uvs[2*c.uv:]
		v.TexCoord = mgl32.Vec2{uv[0], 1 - uv[1]}
	}
	if c.normal >= 0 {
		n := dec.Normals[3*c.normal:]
		v.Normal = mgl32.Vec3{n[0], n[1], n[2]}
	}
	return v
}

// accumulateFaceNormals sums unnormalized face normals (length proportional
// to triangle area) into the flagged vertices, then normalizes them.
func accumulateFaceNormals(vertices []Vertex, indices []uint32, flagged map[uint32]bool) {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := vertices[a].Position, vertices[b].Position, vertices[c].Position
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		for _, idx := range [3]uint32{a, b, c} {
			if flagged[idx] {
				vertices[idx].Normal = vertices[idx].Normal.Add(n)
			}
		}
	}

	for idx := range flagged {
		n := vertices[idx].Normal
		if n.Len() < 1e-8 {
			vertices[idx].Normal = mgl32.Vec3{0, 1, 0}
			continue
		}
		vertices[idx].Normal = n.Normalize()
	}
}
