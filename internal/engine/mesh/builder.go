package mesh

import (
	"fmt"
	"slices"

	"github.com/Faultbox/meshforge/pkg/math"
)

// Builder grows a mesh one triangle (or one pixel) at a time.
//
// Triangle mode and pixel mode are not meant to be mixed in one mesh
// lifetime; Builder does not enforce it, and Validate reports the
// resulting partial attribute sequences.
type Builder struct {
	positions []float32
	normals   []float32
	uv        []float32
	colors    []float32

	vertexCount int

	// RGB only; alpha is fixed at 1
	color [3]float32
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Clear discards all attribute data, resets the vertex count and the
// current color. Calling it on an empty builder is a no-op.
func (b *Builder) Clear() {
	b.positions = b.positions[:0]
	b.normals = b.normals[:0]
	b.uv = b.uv[:0]
	b.colors = b.colors[:0]
	b.vertexCount = 0
	b.color = [3]float32{}
}

// AddTriangle appends three positions with no normals or texture coordinates.
func (b *Builder) AddTriangle(p0, p1, p2 math.Vec3) {
	b.addPositions(p0, p1, p2)
	b.vertexCount += 3
}

// AddTriangleWithUV appends a triangle with texture coordinates. The flat
// face normal (p1-p0) x (p2-p0), un-normalized, is attached to all three
// vertices.
func (b *Builder) AddTriangleWithUV(p0 math.Vec3, uv0 math.Vec2, p1 math.Vec3, uv1 math.Vec2, p2 math.Vec3, uv2 math.Vec2) {
	n := math.FaceNormal(p0, p1, p2)
	b.AddTriangleWithNormals(p0, n, p1, n, p2, n)
	b.addUV(uv0, uv1, uv2)
}

// AddTriangleWithNormals appends a triangle with the given per-vertex normals.
func (b *Builder) AddTriangleWithNormals(p0, n0, p1, n1, p2, n2 math.Vec3) {
	b.addPositions(p0, p1, p2)
	for _, n := range [3]math.Vec3{n0, n1, n2} {
		b.normals = append(b.normals, n.X, n.Y, n.Z)
	}
	b.vertexCount += 3
}

// AddTriangleWithNormalsUV appends a triangle with per-vertex normals and
// texture coordinates, both taken verbatim.
func (b *Builder) AddTriangleWithNormalsUV(p0, n0 math.Vec3, uv0 math.Vec2, p1, n1 math.Vec3, uv1 math.Vec2, p2, n2 math.Vec3, uv2 math.Vec2) {
	b.AddTriangleWithNormals(p0, n0, p1, n1, p2, n2)
	b.addUV(uv0, uv1, uv2)
}

// SetColor sets the color used by subsequent SetPixel calls.
func (b *Builder) SetColor(r, g, blue float32) {
	b.color = [3]float32{r, g, blue}
}

// SetPixel appends one point at (x, y, PixelDepth) in the current color.
func (b *Builder) SetPixel(x, y int) {
	b.positions = append(b.positions, float32(x), float32(y), PixelDepth, 1)
	b.colors = append(b.colors, b.color[0], b.color[1], b.color[2], 1)
	b.vertexCount++
}

func (b *Builder) addPositions(p0, p1, p2 math.Vec3) {
	b.positions = append(b.positions,
		p0.X, p0.Y, p0.Z, 1,
		p1.X, p1.Y, p1.Z, 1,
		p2.X, p2.Y, p2.Z, 1,
	)
}

func (b *Builder) addUV(uv0, uv1, uv2 math.Vec2) {
	b.uv = append(b.uv, uv0.X, uv0.Y, uv1.X, uv1.Y, uv2.X, uv2.Y)
}

// VertexCount returns the number of vertices appended so far.
func (b *Builder) VertexCount() int {
	return b.vertexCount
}

// Positions returns a copy of the position sequence, or false if empty.
func (b *Builder) Positions() ([]float32, bool) {
	return snapshot(b.positions)
}

// Normals returns a copy of the normal sequence, or false if absent.
func (b *Builder) Normals() ([]float32, bool) {
	return snapshot(b.normals)
}

// UV returns a copy of the texture coordinate sequence, or false if absent.
func (b *Builder) UV() ([]float32, bool) {
	return snapshot(b.uv)
}

// Colors returns a copy of the color sequence, or false if absent.
func (b *Builder) Colors() ([]float32, bool) {
	return snapshot(b.colors)
}

// ElementIndices returns the identity index sequence, or false if the
// mesh has no vertices.
func (b *Builder) ElementIndices() ([]uint32, bool) {
	if b.vertexCount == 0 {
		return nil, false
	}
	return identity(b.vertexCount), true
}

// Snapshot returns an immutable copy of every attribute sequence.
func (b *Builder) Snapshot() Data {
	d := Data{VertexCount: b.vertexCount}
	d.Positions, _ = b.Positions()
	d.Colors, _ = b.Colors()
	d.Normals, _ = b.Normals()
	d.UV, _ = b.UV()
	return d
}

// Validate checks that every present attribute covers every vertex.
func (b *Builder) Validate() error {
	checks := []struct {
		name       string
		values     []float32
		components int
		optional   bool
	}{
		{"positions", b.positions, PositionComponents, false},
		{"colors", b.colors, ColorComponents, true},
		{"normals", b.normals, NormalComponents, true},
		{"uv", b.uv, UVComponents, true},
	}
	for _, c := range checks {
		if c.optional && len(c.values) == 0 {
			continue
		}
		if want := c.components * b.vertexCount; len(c.values) != want {
			return fmt.Errorf("%w: %s has %d values, want %d for %d vertices",
				ErrPartialAttribute, c.name, len(c.values), want, b.vertexCount)
		}
	}
	return nil
}

func snapshot(values []float32) ([]float32, bool) {
	if len(values) == 0 {
		return nil, false
	}
	return slices.Clone(values), true
}
