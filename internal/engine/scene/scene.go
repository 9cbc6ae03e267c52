// Package scene describes what the viewer draws: objects built from catalog
// shapes, their materials and transforms, and the scene lighting.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshforge/pkg/math"
)

// Shader programs an object can be drawn with.
const (
	ProgramPhong   = "phong"
	ProgramTexture = "texture"
	ProgramGlass   = "glass"
)

var (
	ErrBadTransform    = errors.New("scene: transform step must set exactly one operation")
	ErrUnknownProgram  = errors.New("scene: unknown shader program")
	ErrMissingShape    = errors.New("scene: object has no shape")
	ErrNoTexture       = errors.New("scene: textured object has no texture")
	ErrUnknownMaterial = errors.New("scene: unknown material")
)

// ObjectDesc is one object as written in a scene file. Material names a
// shared entry in Description.Materials; Surface overrides it inline.
type ObjectDesc struct {
	Name       string      `yaml:"name"`
	Shape      string      `yaml:"shape"`
	Program    string      `yaml:"program"`
	Material   string      `yaml:"material,omitempty"`
	Surface    *Material   `yaml:"surface,omitempty"`
	Texture    string      `yaml:"texture,omitempty"`
	Transforms []Transform `yaml:"transform"`
}

// Description is a parsed scene file.
type Description struct {
	Light     Light               `yaml:"light"`
	Materials map[string]Material `yaml:"materials"`
	Objects   []ObjectDesc        `yaml:"objects"`
}

// Object is a resolved, drawable scene object.
type Object struct {
	Name     string
	Shape    string
	Program  string
	Material Material
	Texture  string
	Model    math.Mat4
}

// Scene is a resolved description.
type Scene struct {
	Light   Light
	Objects []Object
}

// Load reads and resolves the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and resolves a YAML scene description. A missing light
// section gets DefaultLight.
func Parse(r io.Reader) (*Scene, error) {
	desc := Description{Light: DefaultLight()}
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return desc.Resolve()
}

// Resolve validates every object and computes its model matrix.
func (d *Description) Resolve() (*Scene, error) {
	s := &Scene{
		Light:   d.Light,
		Objects: make([]Object, 0, len(d.Objects)),
	}

	for i, od := range d.Objects {
		obj, err := d.resolveObject(od)
		if err != nil {
			name := od.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("object %s: %w", name, err)
		}
		s.Objects = append(s.Objects, obj)
	}
	return s, nil
}

func (d *Description) resolveObject(od ObjectDesc) (Object, error) {
	if od.Shape == "" {
		return Object{}, ErrMissingShape
	}

	program := od.Program
	if program == "" {
		program = ProgramPhong
	}
	switch program {
	case ProgramPhong, ProgramGlass:
	case ProgramTexture:
		if od.Texture == "" {
			return Object{}, ErrNoTexture
		}
	default:
		return Object{}, fmt.Errorf("%w: %q", ErrUnknownProgram, program)
	}

	mat := DefaultMaterial()
	if od.Material != "" {
		m, ok := d.Materials[od.Material]
		if !ok {
			return Object{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, od.Material)
		}
		mat = m
	}
	if od.Surface != nil {
		mat = *od.Surface
	}

	model, err := ModelMatrix(od.Transforms)
	if err != nil {
		return Object{}, err
	}

	return Object{
		Name:     od.Name,
		Shape:    od.Shape,
		Program:  program,
		Material: mat,
		Texture:  od.Texture,
		Model:    model,
	}, nil
}

// Shapes returns the distinct shape names in first-use order.
func (s *Scene) Shapes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range s.Objects {
		if !seen[o.Shape] {
			seen[o.Shape] = true
			out = append(out, o.Shape)
		}
	}
	return out
}

// Textures returns the distinct texture names in first-use order.
func (s *Scene) Textures() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range s.Objects {
		if o.Texture != "" && !seen[o.Texture] {
			seen[o.Texture] = true
			out = append(out, o.Texture)
		}
	}
	return out
}
