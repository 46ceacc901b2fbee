package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidSphereParams is returned for a non-positive radius, fewer than
// 3 sectors, or fewer than 2 stacks.
var ErrInvalidSphereParams = errors.New("invalid sphere parameters")

// NewSphere builds a Y-up UV sphere centered at the origin.
//
// Stack i runs from the north pole (i=0) to the south pole (i=stacks) and
// sector j sweeps 0..2π. Seam (j=0, j=sectors) and pole vertices are
// duplicated per column so texture coordinates wrap cleanly, giving
// (stacks+1)*(sectors+1) vertices. The pole stacks emit one triangle per
// sector and every other stack two, for 2*sectors*(stacks-1) triangles,
// all wound counter-clockwise when seen from outside.
func NewSphere(radius float32, sectors, stacks int) (*Mesh, error) {
	if radius <= 0 || sectors < 3 || stacks < 2 {
		return nil, fmt.Errorf("%w: radius=%g sectors=%d stacks=%d",
			ErrInvalidSphereParams, radius, sectors, stacks)
	}

	r := float64(radius)
	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	vertices := make([]Vertex, 0, (stacks+1)*(sectors+1))
	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xz := r * math.Cos(stackAngle)
		y := r * math.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			x := xz * math.Cos(sectorAngle)
			z := xz * math.Sin(sectorAngle)

			pos := mgl32.Vec3{float32(x), float32(y), float32(z)}
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   mgl32.Vec3{float32(x / r), float32(y / r), float32(z / r)},
				TexCoord: mgl32.Vec2{float32(j) / float32(sectors), float32(i) / float32(stacks)},
			})
		}
	}

	// k1--k1+1
	// |  / |
	// | /  |
	// k2--k2+1
	indices := make([]uint32, 0, 6*sectors*(stacks-1))
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k1+1, k2)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2+1, k2)
			}
		}
	}

	return &Mesh{
		Name:     fmt.Sprintf("sphere(%g,%d,%d)", radius, sectors, stacks),
		Vertices: vertices,
		Indices:  indices,
	}, nil
}
