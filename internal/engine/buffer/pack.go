package buffer

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Faultbox/meshforge/internal/engine/mesh"
)

// Block is a packed mesh: the identity index block followed by the
// concatenated vertex block described by Layout.
type Block struct {
	Layout   Layout
	Indices  []byte
	Vertices []byte
}

// Pack computes the layout of d and serializes its indices and attribute
// sections as little-endian uint32 and float32 values.
func Pack(d mesh.Data) (Block, error) {
	l := Compute(d)
	if l.Empty() {
		return Block{Layout: l}, nil
	}

	blk := Block{
		Layout:   l,
		Indices:  make([]byte, l.IndexSize),
		Vertices: make([]byte, l.VertexSize),
	}

	for i, idx := range d.Indices() {
		binary.LittleEndian.PutUint32(blk.Indices[i*IndexSize:], idx)
	}

	for _, s := range l.Sections {
		values := s.Attribute.values(d)
		if len(values)*FloatSize != s.Size {
			return Block{}, fmt.Errorf("buffer: %s section has %d values, want %d",
				s.Attribute, len(values), s.Size/FloatSize)
		}
		dst := blk.Vertices[s.Offset : s.Offset+s.Size]
		for i, v := range values {
			binary.LittleEndian.PutUint32(dst[i*FloatSize:], math.Float32bits(v))
		}
	}

	return blk, nil
}

// Floats decodes the section for a back into float32 values.
func (b Block) Floats(a Attribute) ([]float32, bool) {
	s, ok := b.Layout.Section(a)
	if !ok {
		return nil, false
	}
	raw := b.Vertices[s.Offset : s.Offset+s.Size]
	out := make([]float32, s.Size/FloatSize)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*FloatSize:]))
	}
	return out, true
}
