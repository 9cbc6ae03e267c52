// Package buffer computes the GPU buffer layout of an accumulated mesh and
// packs its attribute sequences into byte blocks ready for upload.
package buffer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/internal/logger"
)

// IndexSize is the byte width of one element index (uint32).
const IndexSize = 4

// FloatSize is the byte width of one attribute component (float32).
const FloatSize = 4

// Attribute identifies one per-vertex attribute section.
type Attribute int

// Attributes in their fixed block order.
const (
	Position Attribute = iota
	Color
	Normal
	TexCoord
)

// Attributes lists every attribute in block order.
var Attributes = [...]Attribute{Position, Color, Normal, TexCoord}

// Components returns the per-vertex component count.
func (a Attribute) Components() int {
	switch a {
	case Position:
		return mesh.PositionComponents
	case Color:
		return mesh.ColorComponents
	case Normal:
		return mesh.NormalComponents
	case TexCoord:
		return mesh.UVComponents
	}
	return 0
}

// Name returns the shader input the attribute binds to.
func (a Attribute) Name() string {
	switch a {
	case Position:
		return "vPosition"
	case Color:
		return "vColor"
	case Normal:
		return "vNormal"
	case TexCoord:
		return "vTexCoord"
	}
	return ""
}

func (a Attribute) String() string {
	switch a {
	case Position:
		return "position"
	case Color:
		return "color"
	case Normal:
		return "normal"
	case TexCoord:
		return "uv"
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// values returns the attribute sequence of d for a.
func (a Attribute) values(d mesh.Data) []float32 {
	switch a {
	case Position:
		return d.Positions
	case Color:
		return d.Colors
	case Normal:
		return d.Normals
	case TexCoord:
		return d.UV
	}
	return nil
}

// Section is one contiguous attribute run inside the vertex block.
type Section struct {
	Attribute Attribute
	Offset    int // bytes from the start of the vertex block
	Size      int // bytes
}

// Layout describes the index block and vertex block of one mesh.
type Layout struct {
	VertexCount int
	IndexSize   int       // total index block size in bytes
	VertexSize  int       // total vertex block size in bytes
	Sections    []Section // present attributes only, in block order
}

// Empty reports whether the layout describes no vertices.
func (l Layout) Empty() bool {
	return l.VertexCount == 0
}

// Section returns the section for a, if present.
func (l Layout) Section(a Attribute) (Section, bool) {
	for _, s := range l.Sections {
		if s.Attribute == a {
			return s, true
		}
	}
	return Section{}, false
}

// Compute derives the layout of d. An empty mesh yields an empty layout.
// Compute holds no reference to d, so it must be called again after the
// mesh changes.
func Compute(d mesh.Data) Layout {
	if d.Empty() {
		return Layout{}
	}

	l := Layout{
		VertexCount: d.VertexCount,
		IndexSize:   d.VertexCount * IndexSize,
	}

	offset := 0
	total := 0
	for _, a := range Attributes {
		if len(a.values(d)) == 0 {
			continue
		}
		size := d.VertexCount * a.Components() * FloatSize
		l.Sections = append(l.Sections, Section{Attribute: a, Offset: offset, Size: size})
		offset += size
	}
	for _, s := range l.Sections {
		total += s.Size
	}

	if offset != total {
		logger.Error("buffer layout size mismatch",
			zap.Int("offset", offset),
			zap.Int("sections", total),
			zap.Int("vertices", d.VertexCount),
		)
		panic(fmt.Sprintf("buffer: layout size mismatch: offset %d != section total %d", offset, total))
	}

	l.VertexSize = total
	return l
}
