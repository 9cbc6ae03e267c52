// Package export writes packed meshes as glTF 2.0 documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"

	"github.com/Faultbox/meshforge/internal/engine/buffer"
)

const gltfVersion = "2.0"

var (
	ErrEmptyMesh     = errors.New("export: mesh has no vertices")
	ErrUnknownFormat = errors.New("export: unknown output format")
)

// attributeSemantic maps block sections to glTF vertex attributes.
var attributeSemantic = map[buffer.Attribute]string{
	buffer.Position: "POSITION",
	buffer.Color:    "COLOR_0",
	buffer.Normal:   "NORMAL",
	buffer.TexCoord: "TEXCOORD_0",
}

// accessorType is the glTF element type read from each section. Positions
// are stored as xyzw and read as VEC3 with a 16-byte stride.
var accessorType = map[buffer.Attribute]gltf.AccessorType{
	buffer.Position: gltf.AccessorVec3,
	buffer.Color:    gltf.AccessorVec4,
	buffer.Normal:   gltf.AccessorVec3,
	buffer.TexCoord: gltf.AccessorVec2,
}

// Document builds a glTF document holding blk as a single mesh. The one
// buffer is the index block followed by the vertex block, with a buffer
// view per section at the layout's offsets. Meshes with colors were built
// from pixels and export as points; all others as triangles.
func Document(blk buffer.Block, name string) (*gltf.Document, error) {
	l := blk.Layout
	if l.Empty() {
		return nil, ErrEmptyMesh
	}

	doc := &gltf.Document{}
	doc.Asset.Version = gltfVersion
	doc.Asset.Generator = "meshforge"
	scene := uint32(0)
	doc.Scene = &scene

	data := make([]byte, 0, len(blk.Indices)+len(blk.Vertices))
	data = append(data, blk.Indices...)
	data = append(data, blk.Vertices...)
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{
		ByteLength: uint32(len(data)),
		Data:       data,
	})

	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     0,
		ByteOffset: 0,
		ByteLength: uint32(l.IndexSize),
		Target:     gltf.TargetElementArrayBuffer,
	})
	indexView := uint32(0)
	doc.Accessors = append(doc.Accessors, &gltf.Accessor{
		BufferView:    &indexView,
		ComponentType: gltf.ComponentUint,
		Type:          gltf.AccessorScalar,
		Count:         uint32(l.VertexCount),
	})
	indices := uint32(0)

	prim := &gltf.Primitive{
		Attributes: make(gltf.Attribute),
		Indices:    &indices,
		Mode:       gltf.PrimitiveTriangles,
	}
	if _, ok := l.Section(buffer.Color); ok {
		prim.Mode = gltf.PrimitivePoints
	}

	for _, s := range l.Sections {
		view := &gltf.BufferView{
			Buffer:     0,
			ByteOffset: uint32(l.IndexSize + s.Offset),
			ByteLength: uint32(s.Size),
			Target:     gltf.TargetArrayBuffer,
		}
		if s.Attribute == buffer.Position {
			view.ByteStride = uint32(s.Attribute.Components() * buffer.FloatSize)
		}
		viewIdx := uint32(len(doc.BufferViews))
		doc.BufferViews = append(doc.BufferViews, view)

		acc := &gltf.Accessor{
			BufferView:    &viewIdx,
			ComponentType: gltf.ComponentFloat,
			Type:          accessorType[s.Attribute],
			Count:         uint32(l.VertexCount),
		}
		if s.Attribute == buffer.Position {
			values, _ := blk.Floats(buffer.Position)
			acc.Min, acc.Max = bounds(values)
		}
		prim.Attributes[attributeSemantic[s.Attribute]] = uint32(len(doc.Accessors))
		doc.Accessors = append(doc.Accessors, acc)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
	meshIdx := uint32(0)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: &meshIdx})
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{0}})

	return doc, nil
}

// bounds returns the xyz min and max of xyzw positions.
func bounds(positions []float32) (lo, hi []float32) {
	lo = []float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	hi = []float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for i := 0; i+3 < len(positions); i += 4 {
		for c := 0; c < 3; c++ {
			lo[c] = math32.Min(lo[c], positions[i+c])
			hi[c] = math32.Max(hi[c], positions[i+c])
		}
	}
	return lo, hi
}

// Encode writes doc to w as binary glTF (.glb) or JSON with the buffer
// embedded as a data URI.
func Encode(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		doc.Buffers[0].EmbeddedResource()
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding glTF: %w", err)
	}
	return nil
}

// IsBinary reports whether path names a .glb file, a .gltf file, or
// neither.
func IsBinary(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb":
		return true, nil
	case ".gltf":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// WriteFile exports blk to path; the extension picks the encoding.
func WriteFile(path string, blk buffer.Block, name string) error {
	binary, err := IsBinary(path)
	if err != nil {
		return err
	}
	doc, err := Document(blk, name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, doc, binary); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
