// Package mesh accumulates triangle soups as parallel per-vertex attribute
// sequences ready for buffer layout.
package mesh

// Per-vertex component counts for each attribute sequence.
const (
	PositionComponents = 4 // x, y, z, w (w is always 1)
	ColorComponents    = 4 // r, g, b, a
	NormalComponents   = 3 // x, y, z
	UVComponents       = 2 // u, v
)

// PixelDepth is the fixed z coordinate given to points added with SetPixel.
const PixelDepth float32 = -1

// Data is an immutable snapshot of a mesh. Absent attributes are nil;
// present ones hold exactly components x VertexCount values.
type Data struct {
	Positions   []float32
	Colors      []float32
	Normals     []float32
	UV          []float32
	VertexCount int
}

// Empty reports whether the snapshot holds no vertices.
func (d Data) Empty() bool {
	return d.VertexCount == 0
}

// HasColors reports whether the color attribute is present.
func (d Data) HasColors() bool { return len(d.Colors) > 0 }

// HasNormals reports whether the normal attribute is present.
func (d Data) HasNormals() bool { return len(d.Normals) > 0 }

// HasUV reports whether the texture coordinate attribute is present.
func (d Data) HasUV() bool { return len(d.UV) > 0 }

// Indices returns the identity element sequence 0..VertexCount-1.
// Triangles are never welded, so index i always addresses vertex i.
func (d Data) Indices() []uint32 {
	return identity(d.VertexCount)
}

func identity(n int) []uint32 {
	if n == 0 {
		return nil
	}
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}
