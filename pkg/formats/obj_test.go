package formats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cubeCornerOBJ = `# three faces around the origin
o corner
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 3 4
f 1 4 2
`

func TestParseOBJ_PositionsOnly(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(cubeCornerOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 4 {
		t.Errorf("expected 4 positions, got %d", len(obj.Positions))
	}
	if len(obj.Faces) != 3 {
		t.Fatalf("expected 3 faces, got %d", len(obj.Faces))
	}
	if obj.HasNormals || obj.HasTexCoords {
		t.Error("expected no normals and no texture coordinates")
	}

	f := obj.Faces[1]
	if f[0].Position != 0 || f[1].Position != 2 || f[2].Position != 3 {
		t.Errorf("face 1 positions = %+v, want 0-based (0, 2, 3)", f)
	}
	if f[0].TexCoord != -1 || f[0].Normal != -1 {
		t.Errorf("absent indices should be -1, got %+v", f[0])
	}

	tri := obj.Triangle(2)
	if tri[1].Z != 1 || tri[2].X != 1 {
		t.Errorf("Triangle(2) = %v", tri)
	}
}

func TestParseOBJ_CornerForms(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		face       string
		wantUV     [3]int
		wantNormal [3]int
	}{
		{
			name:       "v/vt",
			header:     "vt 0 0\nvt 1 0\nvt 0 1\n",
			face:       "f 1/3 2/2 3/1",
			wantUV:     [3]int{2, 1, 0},
			wantNormal: [3]int{-1, -1, -1},
		},
		{
			name:       "v//vn",
			header:     "vn 0 0 1\nvn 0 1 0\n",
			face:       "f 1//2 2//1 3//2",
			wantUV:     [3]int{-1, -1, -1},
			wantNormal: [3]int{1, 0, 1},
		},
		{
			name:       "v/vt/vn",
			header:     "vt 0 0\nvt 1 0 0\nvt 0 1\nvn 0 0 1\nvn 0 1 0\n",
			face:       "f 1/1/2 2/2/2 3/3/1",
			wantUV:     [3]int{0, 1, 2},
			wantNormal: [3]int{1, 1, 0},
		},
		{
			name:       "multi digit indices",
			header:     strings.Repeat("vt 0 0\n", 12) + strings.Repeat("vn 0 0 1\n", 11),
			face:       "f 1/12/11 2/10/1 3/1/10",
			wantUV:     [3]int{11, 9, 0},
			wantNormal: [3]int{10, 0, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "v 0 0 0\nv 1 0 0\nv 0 1 0\n" + tt.header + tt.face + "\n"
			obj, err := ParseOBJ(strings.NewReader(src))
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if len(obj.Faces) != 1 {
				t.Fatalf("expected 1 face, got %d", len(obj.Faces))
			}
			for i, c := range obj.Faces[0] {
				if c.Position != i {
					t.Errorf("corner %d position = %d, want %d", i, c.Position, i)
				}
				if c.TexCoord != tt.wantUV[i] {
					t.Errorf("corner %d uv = %d, want %d", i, c.TexCoord, tt.wantUV[i])
				}
				if c.Normal != tt.wantNormal[i] {
					t.Errorf("corner %d normal = %d, want %d", i, c.Normal, tt.wantNormal[i])
				}
			}
		})
	}
}

func TestParseOBJ_FlagsSetByFirstRecord(t *testing.T) {
	// Faces may precede the vt / vn records that change how they are read.
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1 2/2/1 3/3/1\nvt 0 0\nvt 1 0\nvt 0 1\nvn 0 0 1\n"
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if !obj.HasNormals || !obj.HasTexCoords {
		t.Fatal("expected both flags set")
	}
	if obj.Faces[0][2].TexCoord != 2 || obj.Faces[0][2].Normal != 0 {
		t.Errorf("late-declared tables not applied: %+v", obj.Faces[0][2])
	}

	uv := obj.TriangleUV(0)
	if uv[1].X != 1 {
		t.Errorf("TriangleUV(0) = %v", uv)
	}
	n := obj.TriangleNormals(0)
	if n[0].Z != 1 {
		t.Errorf("TriangleNormals(0) = %v", n)
	}
}

func TestParseOBJ_ExtraComponentsIgnored(t *testing.T) {
	src := "v 1 2 3 1.0\nv 0 0 0 0.5 0.5 0.5\nv 1 1 1\nvt 0.25 0.75 0.5\nf 1/1 2/1 3/1\n"
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if obj.Positions[0].Z != 3 {
		t.Errorf("position = %v", obj.Positions[0])
	}
	if obj.TexCoords[0].X != 0.25 || obj.TexCoords[0].Y != 0.75 {
		t.Errorf("texcoord = %v", obj.TexCoords[0])
	}
}

func TestParseOBJ_IgnoresOtherRecords(t *testing.T) {
	src := `mtllib cup.mtl
# comment
g cup
usemtl glaze
s 1

v 0 0 0
v 1 0 0
v 0 1 0
l 1 2
f 1 2 3
`
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(obj.Faces) != 1 || len(obj.Positions) != 3 {
		t.Errorf("got %d faces, %d positions", len(obj.Faces), len(obj.Positions))
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	const tri = "v 0 0 0\nv 1 0 0\nv 0 1 0\n"

	tests := []struct {
		name     string
		src      string
		wantErr  error
		wantLine int
	}{
		{"quad face", tri + "v 1 1 0\nf 1 2 3 4\n", ErrNonTriangularFace, 5},
		{"two corners", tri + "f 1 2\n", ErrNonTriangularFace, 4},
		{"position out of range", tri + "f 1 2 4\n", ErrOBJIndexRange, 4},
		{"zero index", tri + "f 0 1 2\n", ErrOBJIndexRange, 4},
		{"negative index", tri + "f -1 1 2\n", ErrOBJIndexRange, 4},
		{"not a number", tri + "f 1 b 3\n", ErrMalformedOBJ, 4},
		{"short vertex", "v 1 2\n", ErrMalformedOBJ, 1},
		{"bad float", "v 1 x 2\n", ErrMalformedOBJ, 1},
		{"short normal", "vn 1 2\n", ErrMalformedOBJ, 1},
		{"short texcoord", "vt 1\n", ErrMalformedOBJ, 1},
		{"uv declared but absent", tri + "vt 0 0\nf 1 2 3\n", ErrMissingOBJIndex, 5},
		{"uv empty with normals", tri + "vt 0 0\nvn 0 0 1\nf 1//1 2//1 3//1\n", ErrMissingOBJIndex, 6},
		{"normal missing", tri + "vt 0 0\nvn 0 0 1\nf 1/1 2/1 3/1\n", ErrMissingOBJIndex, 6},
		{"normal out of range", tri + "vn 0 0 1\nf 1//1 2//2 3//1\n", ErrOBJIndexRange, 5},
		{"uv out of range", tri + "vt 0 0\nf 1/1 2/1 3/9\n", ErrOBJIndexRange, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var objErr *OBJError
			if !errors.As(err, &objErr) {
				t.Fatalf("expected *OBJError, got %T", err)
			}
			if objErr.Line != tt.wantLine {
				t.Errorf("error line = %d, want %d", objErr.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.obj")
	if err := os.WriteFile(path, []byte(cubeCornerOBJ), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	obj, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(obj.Faces) != 3 {
		t.Errorf("expected 3 faces, got %d", len(obj.Faces))
	}
}

func TestLoadOBJ_Missing(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj"))
	if !errors.Is(err, ErrOpenOBJ) {
		t.Fatalf("expected ErrOpenOBJ, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestParseOBJ_Empty(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(obj.Faces) != 0 {
		t.Errorf("expected no faces, got %d", len(obj.Faces))
	}
}
