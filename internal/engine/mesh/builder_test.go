package mesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/meshforge/pkg/math"
)

var (
	p0 = math.Vec3{X: 0, Y: 0, Z: 0}
	p1 = math.Vec3{X: 2, Y: 0, Z: 0}
	p2 = math.Vec3{X: 0, Y: 3, Z: 0}
)

func TestAddTriangleCounts(t *testing.T) {
	b := NewBuilder()
	for i := 1; i <= 4; i++ {
		b.AddTriangle(p0, p1, p2)
		if b.VertexCount() != 3*i {
			t.Fatalf("after %d triangles: vertex count %d, want %d", i, b.VertexCount(), 3*i)
		}
		pos, ok := b.Positions()
		if !ok || len(pos) != 12*i {
			t.Fatalf("after %d triangles: %d position values, want %d", i, len(pos), 12*i)
		}
	}

	if _, ok := b.Normals(); ok {
		t.Error("AddTriangle should not record normals")
	}
	if _, ok := b.UV(); ok {
		t.Error("AddTriangle should not record uv")
	}
}

func TestAddTriangleForcesW(t *testing.T) {
	b := NewBuilder()
	b.AddTriangle(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 4, Y: 5, Z: 6}, math.Vec3{X: 7, Y: 8, Z: 9})

	pos, _ := b.Positions()
	want := []float32{1, 2, 3, 1, 4, 5, 6, 1, 7, 8, 9, 1}
	for i := range want {
		if pos[i] != want[i] {
			t.Fatalf("positions[%d] = %v, want %v (all: %v)", i, pos[i], want[i], pos)
		}
	}
}

func TestAddTriangleWithUVFlatNormal(t *testing.T) {
	b := NewBuilder()
	b.AddTriangleWithUV(p0, math.Vec2{X: 0, Y: 0}, p1, math.Vec2{X: 1, Y: 0}, p2, math.Vec2{X: 0, Y: 1})
	b.AddTriangleWithUV(p0, math.Vec2{}, p2, math.Vec2{}, p1, math.Vec2{})

	normals, ok := b.Normals()
	if !ok {
		t.Fatal("expected normals to be generated")
	}
	if len(normals) != 18 {
		t.Fatalf("got %d normal values, want 18", len(normals))
	}

	// (2,0,0) x (0,3,0) = (0,0,6), un-normalized, on every corner.
	wants := [][3]float32{{0, 0, 6}, {0, 0, -6}}
	for tri, want := range wants {
		for c := 0; c < 3; c++ {
			n := normals[tri*9+c*3 : tri*9+c*3+3]
			if n[0] != want[0] || n[1] != want[1] || n[2] != want[2] {
				t.Errorf("triangle %d corner %d normal = %v, want %v", tri, c, n, want)
			}
		}
	}

	uv, ok := b.UV()
	if !ok || len(uv) != 12 {
		t.Fatalf("got %d uv values, want 12", len(uv))
	}
	if uv[2] != 1 || uv[5] != 1 {
		t.Errorf("uv not stored verbatim: %v", uv[:6])
	}
}

func TestAddTriangleWithNormalsVerbatim(t *testing.T) {
	b := NewBuilder()
	n0 := math.Vec3{X: 1, Y: 0, Z: 0}
	n1 := math.Vec3{X: 0, Y: 1, Z: 0}
	n2 := math.Vec3{X: 0, Y: 0, Z: 1}
	b.AddTriangleWithNormals(p0, n0, p1, n1, p2, n2)

	normals, _ := b.Normals()
	want := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if normals[i] != want[i] {
			t.Fatalf("normals = %v, want %v", normals, want)
		}
	}
	if _, ok := b.UV(); ok {
		t.Error("AddTriangleWithNormals should not record uv")
	}
}

func TestAddTriangleWithNormalsUV(t *testing.T) {
	b := NewBuilder()
	n := math.Vec3{X: 0, Y: 1, Z: 0}
	b.AddTriangleWithNormalsUV(
		p0, n, math.Vec2{X: 0.1, Y: 0.2},
		p1, n, math.Vec2{X: 0.3, Y: 0.4},
		p2, n, math.Vec2{X: 0.5, Y: 0.6},
	)

	d := b.Snapshot()
	if d.VertexCount != 3 || len(d.Normals) != 9 || len(d.UV) != 6 {
		t.Fatalf("unexpected snapshot sizes: %d vertices, %d normals, %d uv",
			d.VertexCount, len(d.Normals), len(d.UV))
	}
	if d.UV[4] != 0.5 || d.UV[5] != 0.6 {
		t.Errorf("uv = %v", d.UV)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSetPixel(t *testing.T) {
	b := NewBuilder()
	b.SetColor(0.25, 0.5, 0.75)
	b.SetPixel(10, 20)
	b.SetPixel(-3, 4)

	if b.VertexCount() != 2 {
		t.Fatalf("vertex count = %d, want 2", b.VertexCount())
	}

	pos, _ := b.Positions()
	wantPos := []float32{10, 20, PixelDepth, 1, -3, 4, PixelDepth, 1}
	for i := range wantPos {
		if pos[i] != wantPos[i] {
			t.Fatalf("positions = %v, want %v", pos, wantPos)
		}
	}

	colors, ok := b.Colors()
	if !ok {
		t.Fatal("expected colors")
	}
	wantColors := []float32{0.25, 0.5, 0.75, 1, 0.25, 0.5, 0.75, 1}
	for i := range wantColors {
		if colors[i] != wantColors[i] {
			t.Fatalf("colors = %v, want %v", colors, wantColors)
		}
	}
}

func TestSetColorDoesNotAffectTriangles(t *testing.T) {
	b := NewBuilder()
	b.SetColor(1, 0, 0)
	b.AddTriangle(p0, p1, p2)
	if _, ok := b.Colors(); ok {
		t.Error("triangles should not record colors")
	}
}

func TestClearResetsEverything(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Builder)
	}{
		{"empty", func(b *Builder) {}},
		{"triangles", func(b *Builder) {
			b.AddTriangleWithNormalsUV(p0, p0, math.Vec2{}, p1, p1, math.Vec2{}, p2, p2, math.Vec2{})
		}},
		{"pixels", func(b *Builder) {
			b.SetColor(1, 1, 1)
			b.SetPixel(1, 1)
		}},
		{"cleared twice", func(b *Builder) {
			b.AddTriangle(p0, p1, p2)
			b.Clear()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.setup(b)
			b.Clear()

			if b.VertexCount() != 0 {
				t.Errorf("vertex count = %d after Clear", b.VertexCount())
			}
			for name, get := range map[string]func() ([]float32, bool){
				"positions": b.Positions,
				"normals":   b.Normals,
				"uv":        b.UV,
				"colors":    b.Colors,
			} {
				if v, ok := get(); ok || v != nil {
					t.Errorf("%s present after Clear: %v", name, v)
				}
			}
			if idx, ok := b.ElementIndices(); ok || idx != nil {
				t.Errorf("element indices present after Clear: %v", idx)
			}
			if !b.Snapshot().Empty() {
				t.Error("snapshot not empty after Clear")
			}
		})
	}
}

func TestClearResetsColor(t *testing.T) {
	b := NewBuilder()
	b.SetColor(1, 1, 1)
	b.Clear()
	b.SetPixel(0, 0)

	colors, _ := b.Colors()
	if colors[0] != 0 || colors[1] != 0 || colors[2] != 0 || colors[3] != 1 {
		t.Errorf("colors after Clear = %v, want black", colors)
	}
}

func TestElementIndicesIdentity(t *testing.T) {
	b := NewBuilder()
	b.AddTriangle(p0, p1, p2)
	b.AddTriangle(p2, p1, p0)

	idx, ok := b.ElementIndices()
	if !ok || len(idx) != 6 {
		t.Fatalf("ElementIndices() = %v, %v", idx, ok)
	}
	for i, v := range idx {
		if v != uint32(i) {
			t.Errorf("index %d = %d", i, v)
		}
	}
}

func TestSnapshotsAreOwnedCopies(t *testing.T) {
	b := NewBuilder()
	b.AddTriangle(p0, p1, p2)

	first, _ := b.Positions()
	first[0] = 99

	second, _ := b.Positions()
	if second[0] != 0 {
		t.Errorf("mutating a snapshot changed the builder: %v", second)
	}

	d := b.Snapshot()
	b.Clear()
	if len(d.Positions) != 12 || d.VertexCount != 3 {
		t.Errorf("Clear invalidated an earlier snapshot: %+v", d)
	}
}

func TestValidateMixedModes(t *testing.T) {
	b := NewBuilder()
	b.AddTriangleWithNormals(p0, p0, p1, p1, p2, p2)
	b.AddTriangle(p0, p1, p2)

	if err := b.Validate(); !errors.Is(err, ErrPartialAttribute) {
		t.Errorf("Validate() = %v, want ErrPartialAttribute", err)
	}
}
