package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const f32 = 4

// Attrib describes one interleaved float attribute inside a vertex.
type Attrib struct {
	Location uint32
	Size     int32
	Offset   int
}

// Mesh owns a vertex array, its vertex buffer and an optional index buffer.
type Mesh struct {
	VAO uint32
	VBO uint32
	IBO uint32

	stride      int32
	numVertices int32
	numIndices  int32
}

// NewMesh uploads interleaved vertex data, floatsPerVertex floats per vertex.
// indices may be nil for non-indexed drawing.
func NewMesh(vertices []float32, floatsPerVertex int, indices []uint16) *Mesh {
	m := &Mesh{
		stride:      int32(floatsPerVertex * f32),
		numVertices: int32(len(vertices) / floatsPerVertex),
		numIndices:  int32(len(indices)),
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*f32, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.IBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m
}

// Bind points the given attributes at the vertex buffer. It has to be called
// again whenever the program is rebuilt, since locations may move.
func (m *Mesh) Bind(attribs ...Attrib) {
	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, m.stride, uintptr(a.Offset*f32))
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.numIndices > 0 {
		gl.DrawElements(gl.TRIANGLES, m.numIndices, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.numVertices)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Release() {
	gl.DeleteBuffers(1, &m.VBO)
	if m.IBO != 0 {
		gl.DeleteBuffers(1, &m.IBO)
	}
	gl.DeleteVertexArrays(1, &m.VAO)
}
