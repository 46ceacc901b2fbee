package model

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereGeometry(t *testing.T) {
	tests := []struct {
		radius  float32
		sectors int
		stacks  int
	}{
		{1, 36, 18},
		{1, 64, 64},
		{0.5, 3, 2},
		{6, 8, 5},
	}

	for _, tt := range tests {
		mesh, err := NewSphere(tt.radius, tt.sectors, tt.stacks)
		if err != nil {
			t.Fatalf("NewSphere(%g, %d, %d): %v", tt.radius, tt.sectors, tt.stacks, err)
		}

		wantVerts := (tt.stacks + 1) * (tt.sectors + 1)
		if len(mesh.Vertices) != wantVerts {
			t.Errorf("%s: %d vertices, want %d", mesh.Name, len(mesh.Vertices), wantVerts)
		}
		wantTris := 2 * tt.sectors * (tt.stacks - 1)
		if mesh.TriangleCount() != wantTris {
			t.Errorf("%s: %d triangles, want %d", mesh.Name, mesh.TriangleCount(), wantTris)
		}

		tol := 1e-5 * float64(tt.radius)
		for i, v := range mesh.Vertices {
			if d := float64(v.Position.Len()); !mgl32.FloatEqualThreshold(float32(d), tt.radius, float32(tol)) {
				t.Fatalf("%s: vertex %d at distance %f", mesh.Name, i, d)
			}
			want := v.Position.Mul(1 / tt.radius)
			if !vecNear(v.Normal, want, 1e-5) {
				t.Fatalf("%s: vertex %d normal %v, want %v", mesh.Name, i, v.Normal, want)
			}
			if u, s := v.TexCoord[0], v.TexCoord[1]; u < 0 || u > 1 || s < 0 || s > 1 {
				t.Fatalf("%s: vertex %d uv %v out of range", mesh.Name, i, v.TexCoord)
			}
		}
	}
}

func TestNewSphereOutwardWinding(t *testing.T) {
	mesh, err := NewSphere(1, 36, 18)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]].Position
		b := mesh.Vertices[mesh.Indices[i+1]].Position
		c := mesh.Vertices[mesh.Indices[i+2]].Position

		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d (%d,%d,%d) faces inward", i/3,
				mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2])
		}
	}
}

func TestNewSphereIndicesInRange(t *testing.T) {
	mesh, err := NewSphere(2, 12, 6)
	if err != nil {
		t.Fatal(err)
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d = %d out of range (%d vertices)", i, idx, len(mesh.Vertices))
		}
	}
}

func TestNewSpherePolesAndSeam(t *testing.T) {
	const sectors, stacks = 8, 4
	mesh, err := NewSphere(1, sectors, stacks)
	if err != nil {
		t.Fatal(err)
	}

	north := mgl32.Vec3{0, 1, 0}
	south := mgl32.Vec3{0, -1, 0}
	for j := 0; j <= sectors; j++ {
		if p := mesh.Vertices[j].Position; !vecNear(p, north, 1e-6) {
			t.Errorf("north ring vertex %d at %v", j, p)
		}
		if p := mesh.Vertices[stacks*(sectors+1)+j].Position; !vecNear(p, south, 1e-6) {
			t.Errorf("south ring vertex %d at %v", j, p)
		}
	}

	// Seam columns share positions but not texture coordinates.
	for i := 0; i <= stacks; i++ {
		first := mesh.Vertices[i*(sectors+1)]
		last := mesh.Vertices[i*(sectors+1)+sectors]
		if !vecNear(first.Position, last.Position, 1e-6) {
			t.Errorf("stack %d seam positions differ: %v vs %v", i, first.Position, last.Position)
		}
		if first.TexCoord[0] != 0 || last.TexCoord[0] != 1 {
			t.Errorf("stack %d seam u = %f / %f", i, first.TexCoord[0], last.TexCoord[0])
		}
	}
}

func TestNewSphereInvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		radius  float32
		sectors int
		stacks  int
	}{
		{"zero radius", 0, 36, 18},
		{"negative radius", -1, 36, 18},
		{"two sectors", 1, 2, 18},
		{"one stack", 1, 36, 1},
		{"zero stacks", 1, 36, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := NewSphere(tt.radius, tt.sectors, tt.stacks)
			if !errors.Is(err, ErrInvalidSphereParams) {
				t.Errorf("expected ErrInvalidSphereParams, got %v", err)
			}
			if mesh != nil {
				t.Error("expected nil mesh on error")
			}
		})
	}
}

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}
