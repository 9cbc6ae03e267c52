package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/meshforge/internal/engine/buffer"
	"github.com/Faultbox/meshforge/internal/engine/mesh"
	vec "github.com/Faultbox/meshforge/pkg/math"
)

func texturedBlock(t *testing.T) buffer.Block {
	t.Helper()
	b := mesh.NewBuilder()
	b.AddTriangleWithUV(
		vec.Vec3{X: -1, Y: 0, Z: 2}, vec.Vec2{},
		vec.Vec3{X: 1, Y: 0, Z: 2}, vec.Vec2{X: 1},
		vec.Vec3{X: 0, Y: 3, Z: -2}, vec.Vec2{Y: 1},
	)
	blk, err := buffer.Pack(b.Snapshot())
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	return blk
}

func TestDocument(t *testing.T) {
	blk := texturedBlock(t)
	doc, err := Document(blk, "tri")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	// index view + position, normal, uv
	if len(doc.BufferViews) != 4 {
		t.Fatalf("expected 4 buffer views, got %d", len(doc.BufferViews))
	}
	if doc.Buffers[0].ByteLength != uint32(12+48+36+24) {
		t.Errorf("buffer length = %d", doc.Buffers[0].ByteLength)
	}

	tests := []struct {
		view   int
		offset uint32
		length uint32
		stride uint32
	}{
		{0, 0, 12, 0},   // indices
		{1, 12, 48, 16}, // positions
		{2, 60, 36, 0},  // normals
		{3, 96, 24, 0},  // uv
	}
	for _, tt := range tests {
		v := doc.BufferViews[tt.view]
		if v.ByteOffset != tt.offset || v.ByteLength != tt.length || v.ByteStride != tt.stride {
			t.Errorf("view %d = {offset %d, length %d, stride %d}, want {%d, %d, %d}",
				tt.view, v.ByteOffset, v.ByteLength, v.ByteStride, tt.offset, tt.length, tt.stride)
		}
	}

	prim := doc.Meshes[0].Primitives[0]
	if prim.Mode != gltf.PrimitiveTriangles {
		t.Errorf("mode = %v, want triangles", prim.Mode)
	}
	for _, sem := range []string{"POSITION", "NORMAL", "TEXCOORD_0"} {
		if _, ok := prim.Attributes[sem]; !ok {
			t.Errorf("missing attribute %s", sem)
		}
	}
	if _, ok := prim.Attributes["COLOR_0"]; ok {
		t.Error("unexpected COLOR_0")
	}

	pos := doc.Accessors[prim.Attributes["POSITION"]]
	if pos.Type != gltf.AccessorVec3 || pos.Count != 3 {
		t.Errorf("position accessor = %+v", pos)
	}
	wantMin := []float32{-1, 0, -2}
	wantMax := []float32{1, 3, 2}
	for i := 0; i < 3; i++ {
		if pos.Min[i] != wantMin[i] || pos.Max[i] != wantMax[i] {
			t.Errorf("bounds = %v..%v, want %v..%v", pos.Min, pos.Max, wantMin, wantMax)
			break
		}
	}

	idx := doc.Accessors[*prim.Indices]
	if idx.ComponentType != gltf.ComponentUint || idx.Count != 3 {
		t.Errorf("index accessor = %+v", idx)
	}
}

func TestDocument_Pixels(t *testing.T) {
	b := mesh.NewBuilder()
	b.SetColor(1, 0, 0)
	b.SetPixel(4, 5)
	blk, err := buffer.Pack(b.Snapshot())
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	doc, err := Document(blk, "px")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Mode != gltf.PrimitivePoints {
		t.Errorf("mode = %v, want points", prim.Mode)
	}
	col := doc.Accessors[prim.Attributes["COLOR_0"]]
	if col.Type != gltf.AccessorVec4 {
		t.Errorf("color accessor type = %v", col.Type)
	}
}

func TestDocument_Empty(t *testing.T) {
	if _, err := Document(buffer.Block{}, "none"); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("expected ErrEmptyMesh, got %v", err)
	}
}

func TestEncode_Binary(t *testing.T) {
	blk := texturedBlock(t)
	doc, err := Document(blk, "tri")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc, true); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("glTF")) {
		t.Fatal("missing GLB magic")
	}

	var decoded gltf.Document
	if err := gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(&decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	data := decoded.Buffers[0].Data
	if len(data) < 12+48 {
		t.Fatalf("decoded buffer too short: %d", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[8:]); got != 2 {
		t.Errorf("third index = %d, want 2", got)
	}
	// third position y sits in the position view at vertex 2, component 1
	y := math.Float32frombits(binary.LittleEndian.Uint32(data[12+2*16+4:]))
	if y != 3 {
		t.Errorf("third position y = %v, want 3", y)
	}
}

func TestEncode_JSON(t *testing.T) {
	doc, err := Document(texturedBlock(t), "tri")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc, false); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"data:application/octet-stream;base64,`) {
		t.Error("buffer not embedded as data URI")
	}
	if !strings.Contains(out, `"TEXCOORD_0"`) {
		t.Error("missing TEXCOORD_0 attribute")
	}
}

func TestWriteFile(t *testing.T) {
	blk := texturedBlock(t)
	dir := t.TempDir()

	for _, name := range []string{"tri.glb", "tri.gltf"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, blk, "tri"); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
		doc, err := gltf.Open(path)
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", name, err)
		}
		if len(doc.Meshes) != 1 || doc.Meshes[0].Name != "tri" {
			t.Errorf("%s: unexpected meshes %+v", name, doc.Meshes)
		}
	}

	if err := WriteFile(filepath.Join(dir, "tri.obj"), blk, "tri"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
