package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/engine/buffer"
	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/internal/engine/shader"
	"github.com/Faultbox/meshforge/internal/logger"
)

// BufferSet is one mesh uploaded to the GPU: an element buffer, a vertex
// buffer laid out per buffer.Layout, and a VAO per program it was bound to.
type BufferSet struct {
	Layout buffer.Layout

	vbo, ebo uint32
	vaos     map[uint32]uint32
}

// Upload packs d and copies it into new GPU buffers. An empty mesh yields
// an empty set that draws nothing.
func Upload(d mesh.Data) (*BufferSet, error) {
	blk, err := buffer.Pack(d)
	if err != nil {
		return nil, err
	}

	bs := &BufferSet{
		Layout: blk.Layout,
		vaos:   make(map[uint32]uint32),
	}
	if blk.Layout.Empty() {
		return bs, nil
	}

	gl.GenBuffers(1, &bs.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, bs.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(blk.Vertices), unsafe.Pointer(&blk.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &bs.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bs.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(blk.Indices), unsafe.Pointer(&blk.Indices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	logger.Debug("buffer set uploaded",
		zap.Uint32("vbo", bs.vbo),
		zap.Uint32("ebo", bs.ebo),
		zap.Int("vertices", blk.Layout.VertexCount),
		zap.Int("bytes", blk.Layout.VertexSize),
	)
	return bs, nil
}

// bind returns the VAO wiring this set's sections to prog's inputs,
// creating it on first use. Attributes the program does not declare
// are skipped.
func (bs *BufferSet) bind(prog *shader.Program) uint32 {
	if vao, ok := bs.vaos[prog.ID]; ok {
		return vao
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, bs.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bs.ebo)

	for _, s := range bs.Layout.Sections {
		loc := prog.Attrib(s.Attribute.Name())
		if loc < 0 {
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(s.Attribute.Components()), gl.FLOAT, false, 0, uintptr(s.Offset))
	}

	gl.BindVertexArray(0)
	bs.vaos[prog.ID] = vao
	return vao
}

// Draw issues the indexed draw of the whole set with prog, which must
// already be in use.
func (bs *BufferSet) Draw(prog *shader.Program) {
	if bs.Layout.Empty() {
		return
	}
	gl.BindVertexArray(bs.bind(prog))
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(bs.Layout.VertexCount), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers and VAOs.
func (bs *BufferSet) Delete() {
	for _, vao := range bs.vaos {
		gl.DeleteVertexArrays(1, &vao)
	}
	bs.vaos = make(map[uint32]uint32)
	if bs.vbo != 0 {
		gl.DeleteBuffers(1, &bs.vbo)
		bs.vbo = 0
	}
	if bs.ebo != 0 {
		gl.DeleteBuffers(1, &bs.ebo)
		bs.ebo = 0
	}
}
