package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// skyboxVertices are the corners of a unit cube.
var skyboxVertices = [...]float32{
	-1, -1, 1,
	1, -1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,
}

// skyboxIndices wind every face inward, towards the camera at the center.
var skyboxIndices = [...]uint32{
	1, 2, 6, 6, 5, 1, // +X
	0, 4, 7, 7, 3, 0, // -X
	3, 7, 6, 6, 2, 3, // +Y
	0, 1, 5, 5, 4, 0, // -Y
	4, 5, 6, 6, 7, 4, // -Z
	0, 3, 2, 2, 1, 0, // +Z
}

// Skybox is the cube drawn behind everything with a cubemap texture.
type Skybox struct {
	vao, vbo, ebo uint32
	cubemap       uint32
}

func newSkybox(cubemap uint32) *Skybox {
	s := &Skybox{cubemap: cubemap}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVertices)*4, unsafe.Pointer(&skyboxVertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(skyboxIndices)*4, unsafe.Pointer(&skyboxIndices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return s
}

func (s *Skybox) draw() {
	gl.BindVertexArray(s.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(skyboxIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *Skybox) destroy() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteBuffers(1, &s.ebo)
}

func bindTexture2D(unit uint32, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}
