// Package model provides mesh data, the UV-sphere generator and OBJ mesh building.
package model

import "github.com/go-gl/mathgl/mgl32"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// The layout matches the vertex attributes bound in Upload: 0=position, 1=normal, 2=uv.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// TextureKind identifies the sampler a texture is bound to.
type TextureKind int

const (
	TextureDiffuse TextureKind = iota
	TextureSpecular
)

func (k TextureKind) String() string {
	switch k {
	case TextureDiffuse:
		return "diffuse"
	case TextureSpecular:
		return "specular"
	default:
		return "unknown"
	}
}

// TextureBinding attaches a GL texture to a mesh.
type TextureBinding struct {
	Kind TextureKind
	ID   uint32
	Path string
}

// Mesh holds vertex and index data ready for GPU upload.
// After construction the only permitted changes are appending texture
// bindings and setting the material shininess.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Textures []TextureBinding

	// Shininess is the material's specular exponent; zero means unset.
	Shininess float32
}

// AddTexture appends a texture binding.
func (m *Mesh) AddTexture(t TextureBinding) {
	m.Textures = append(m.Textures, t)
}

// Texture returns the first binding of the given kind.
func (m *Mesh) Texture(kind TextureKind) (TextureBinding, bool) {
	for _, t := range m.Textures {
		if t.Kind == kind {
			return t, true
		}
	}
	return TextureBinding{}, false
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
