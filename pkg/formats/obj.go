package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/meshforge/pkg/math"
)

// OBJ format errors.
var (
	ErrOpenOBJ           = errors.New("cannot open OBJ file")
	ErrMalformedOBJ      = errors.New("malformed OBJ record")
	ErrNonTriangularFace = errors.New("face is not a triangle")
	ErrMissingOBJIndex   = errors.New("face corner is missing an index")
	ErrOBJIndexRange     = errors.New("face index out of range")
)

// OBJError reports the line an OBJ parse error occurred on.
type OBJError struct {
	Line int
	Text string
	Err  error
}

func (e *OBJError) Error() string {
	return fmt.Sprintf("obj line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *OBJError) Unwrap() error {
	return e.Err
}

// OBJCorner holds the 0-based table indices of one face corner.
// TexCoord and Normal are -1 when the file declares no such table.
type OBJCorner struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJFace is a triangular face.
type OBJFace [3]OBJCorner

// OBJ is a parsed Wavefront OBJ file restricted to a single group of
// triangles.
type OBJ struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Faces     []OBJFace

	// Set by the first vn / vt record in the file.
	HasNormals   bool
	HasTexCoords bool
}

// Triangle returns the positions of face i.
func (o *OBJ) Triangle(i int) [3]math.Vec3 {
	f := o.Faces[i]
	return [3]math.Vec3{
		o.Positions[f[0].Position],
		o.Positions[f[1].Position],
		o.Positions[f[2].Position],
	}
}

// TriangleNormals returns the normals of face i. HasNormals must be set.
func (o *OBJ) TriangleNormals(i int) [3]math.Vec3 {
	f := o.Faces[i]
	return [3]math.Vec3{
		o.Normals[f[0].Normal],
		o.Normals[f[1].Normal],
		o.Normals[f[2].Normal],
	}
}

// TriangleUV returns the texture coordinates of face i. HasTexCoords must be set.
func (o *OBJ) TriangleUV(i int) [3]math.Vec2 {
	f := o.Faces[i]
	return [3]math.Vec2{
		o.TexCoords[f[0].TexCoord],
		o.TexCoords[f[1].TexCoord],
		o.TexCoords[f[2].TexCoord],
	}
}

// LoadOBJ opens and parses an OBJ file.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenOBJ, path, err)
	}
	defer f.Close()

	return ParseOBJ(f)
}

// rawCorner is a face corner before the whole file has been read.
type rawCorner struct {
	text string
	line int
	src  string
}

// ParseOBJ parses OBJ text. Recognized records are v, vn, vt and f; every
// other line is ignored. Face corners are resolved after the whole input
// has been read, because whether a corner carries uv and normal indices
// depends on the vt / vn records anywhere in the file.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	var corners []rawCorner

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		lineErr := func(err error) error {
			return &OBJError{Line: lineNo, Text: line, Err: err}
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, lineErr(err)
			}
			obj.Positions = append(obj.Positions, math.Vec3{X: v[0], Y: v[1], Z: v[2]})

		case "vn":
			obj.HasNormals = true
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, lineErr(err)
			}
			obj.Normals = append(obj.Normals, math.Vec3{X: v[0], Y: v[1], Z: v[2]})

		case "vt":
			obj.HasTexCoords = true
			// an optional w is accepted and dropped
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, lineErr(err)
			}
			obj.TexCoords = append(obj.TexCoords, math.Vec2{X: v[0], Y: v[1]})

		case "f":
			if len(fields) != 4 {
				return nil, lineErr(fmt.Errorf("%w: %d corners", ErrNonTriangularFace, len(fields)-1))
			}
			for _, c := range fields[1:] {
				corners = append(corners, rawCorner{text: c, line: lineNo, src: line})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	obj.Faces = make([]OBJFace, 0, len(corners)/3)
	var face OBJFace
	for i, rc := range corners {
		c, err := obj.resolveCorner(rc.text)
		if err != nil {
			return nil, &OBJError{Line: rc.line, Text: rc.src, Err: err}
		}
		face[i%3] = c
		if i%3 == 2 {
			obj.Faces = append(obj.Faces, face)
		}
	}

	return obj, nil
}

// resolveCorner splits "v", "v/vt", "v/vt/vn" or "v//vn" into 0-based
// indices. The position is the text before the first slash, the normal
// the text after the last slash, and the texture coordinate the text in
// between (or after the only slash).
func (o *OBJ) resolveCorner(text string) (OBJCorner, error) {
	c := OBJCorner{TexCoord: -1, Normal: -1}

	first := strings.IndexByte(text, '/')
	last := strings.LastIndexByte(text, '/')

	posText := text
	if first >= 0 {
		posText = text[:first]
	}
	var err error
	if c.Position, err = parseIndex(posText, len(o.Positions), "position"); err != nil {
		return c, err
	}

	if o.HasTexCoords {
		if first < 0 {
			return c, fmt.Errorf("%w: no texture coordinate in %q", ErrMissingOBJIndex, text)
		}
		uvText := text[first+1:]
		if last > first {
			uvText = text[first+1 : last]
		}
		if c.TexCoord, err = parseIndex(uvText, len(o.TexCoords), "texture coordinate"); err != nil {
			return c, err
		}
	}

	if o.HasNormals {
		if first < 0 || (o.HasTexCoords && last == first) {
			return c, fmt.Errorf("%w: no normal in %q", ErrMissingOBJIndex, text)
		}
		if c.Normal, err = parseIndex(text[last+1:], len(o.Normals), "normal"); err != nil {
			return c, err
		}
	}

	return c, nil
}

// parseIndex converts a 1-based OBJ index to a 0-based table index.
func parseIndex(s string, tableLen int, what string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty %s index", ErrMissingOBJIndex, what)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s index %q", ErrMalformedOBJ, what, s)
	}
	if n < 1 || n > tableLen {
		return 0, fmt.Errorf("%w: %s %d of %d", ErrOBJIndexRange, what, n, tableLen)
	}
	return n - 1, nil
}

// parseFloats parses the first n fields. Extra fields (w, vertex colors)
// are ignored.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrMalformedOBJ, n, len(fields))
	}
	out := make([]float32, n)
	for i, f := range fields[:n] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedOBJ, f)
		}
		out[i] = float32(v)
	}
	return out, nil
}
