package model

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture units used by the lit shader's material samplers.
const (
	DiffuseUnit  = 0
	SpecularUnit = 1
)

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	Name      string
	Shininess float32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	diffuse    uint32
	specular   uint32
}

// Upload creates the VAO, VBO and EBO for a mesh.
// Attribute layout: 0=position, 1=normal, 2=texcoord.
func Upload(m *Mesh) *GPUMesh {
	g := &GPUMesh{Name: m.Name, Shininess: m.Shininess}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	g.indexCount = int32(len(m.Indices))
	gl.BindVertexArray(0)

	if t, ok := m.Texture(TextureDiffuse); ok {
		g.diffuse = t.ID
	}
	if t, ok := m.Texture(TextureSpecular); ok {
		g.specular = t.ID
	} else {
		g.specular = g.diffuse
	}
	return g
}

// Draw binds the mesh textures and issues the indexed draw call.
// A mesh without textures draws with whatever the caller bound to the units.
func (g *GPUMesh) Draw() {
	if g.indexCount == 0 {
		return
	}
	if g.diffuse != 0 {
		gl.ActiveTexture(gl.TEXTURE0 + DiffuseUnit)
		gl.BindTexture(gl.TEXTURE_2D, g.diffuse)
	}
	if g.specular != 0 {
		gl.ActiveTexture(gl.TEXTURE0 + SpecularUnit)
		gl.BindTexture(gl.TEXTURE_2D, g.specular)
	}

	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Destroy releases the GPU buffers. Textures are owned by the texture loader.
func (g *GPUMesh) Destroy() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	g.vao, g.vbo, g.ebo, g.indexCount = 0, 0, 0, 0
}

// Model is a set of uploaded meshes drawn together.
type Model struct {
	Name   string
	Meshes []*GPUMesh
}

// UploadModel uploads every mesh.
func UploadModel(name string, meshes []*Mesh) *Model {
	md := &Model{Name: name, Meshes: make([]*GPUMesh, 0, len(meshes))}
	for _, m := range meshes {
		md.Meshes = append(md.Meshes, Upload(m))
	}
	return md
}

// Draw draws every mesh.
func (md *Model) Draw() {
	md.DrawEach(nil)
}

// DrawEach draws every mesh, calling before ahead of each draw so the caller
// can set per-mesh uniforms.
func (md *Model) DrawEach(before func(*GPUMesh)) {
	for _, m := range md.Meshes {
		if before != nil {
			before(m)
		}
		m.Draw()
	}
}

// Destroy releases every mesh.
func (md *Model) Destroy() {
	for _, m := range md.Meshes {
		m.Destroy()
	}
	md.Meshes = nil
}
