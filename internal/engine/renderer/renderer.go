// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/engine/camera"
	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/internal/engine/scene"
	"github.com/Faultbox/meshforge/internal/engine/shader"
	"github.com/Faultbox/meshforge/internal/engine/texture"
	"github.com/Faultbox/meshforge/internal/logger"
)

// ErrMissingProgram is returned when a scene object names a program the
// renderer was not given sources for.
var ErrMissingProgram = errors.New("renderer: missing shader program")

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// ShaderSource is a vertex/fragment source pair.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// ShapeBuilder builds a named shape into a builder; shapes.Catalog
// satisfies it.
type ShapeBuilder interface {
	Make(name string, b *mesh.Builder) (bool, error)
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs map[string]*shader.Program
	shapes   map[string]*BufferSet
	textures map[string]uint32
}

// New creates a new renderer and compiles the given programs.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, sources map[string]ShaderSource) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		programs: make(map[string]*shader.Program),
		shapes:   make(map[string]*BufferSet),
		textures: make(map[string]uint32),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.ClearColor(0, 0, 0, 0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	for name, src := range sources {
		prog, err := shader.NewProgram(name, src.Vertex, src.Fragment)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("failed to create %s program: %w", name, err)
		}
		r.programs[name] = prog
		r.log.Debug("shader program created", zap.String("name", name), zap.Uint32("program", prog.ID))
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, bs := range r.shapes {
		bs.Delete()
	}
	for _, id := range r.textures {
		texture.Delete(id)
	}
	for _, p := range r.programs {
		p.Delete()
	}
	r.shapes = make(map[string]*BufferSet)
	r.textures = make(map[string]uint32)
	r.programs = make(map[string]*shader.Program)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// LoadScene uploads every shape and texture the scene uses. Shapes are
// built one at a time into a single reused builder. Unknown shapes are
// skipped; objects using them draw nothing.
func (r *Renderer) LoadScene(s *scene.Scene, shapes ShapeBuilder, texturePath func(string) string) error {
	for _, o := range s.Objects {
		if _, ok := r.programs[o.Program]; !ok {
			return fmt.Errorf("%w: %s (object %s)", ErrMissingProgram, o.Program, o.Name)
		}
	}

	b := mesh.NewBuilder()
	for _, name := range s.Shapes() {
		if _, ok := r.shapes[name]; ok {
			continue
		}
		ok, err := shapes.Make(name, b)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("shape %s: %w", name, err)
		}
		bs, err := Upload(b.Snapshot())
		if err != nil {
			return fmt.Errorf("shape %s: %w", name, err)
		}
		r.shapes[name] = bs
	}
	b.Clear()

	for _, name := range s.Textures() {
		if _, ok := r.textures[name]; ok {
			continue
		}
		img, err := texture.Load(texturePath(name))
		if err != nil {
			// untextured objects still draw, just with an unbound sampler
			r.log.Error("texture load failed", zap.String("texture", name), zap.Error(err))
			continue
		}
		r.textures[name] = texture.Upload(img)
	}

	r.log.Info("scene loaded",
		zap.Int("objects", len(s.Objects)),
		zap.Int("shapes", len(r.shapes)),
		zap.Int("textures", len(r.textures)),
	)
	return nil
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {}

// ReadPixels reads the back buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// DrawScene draws every object of s as seen from cam.
func (r *Renderer) DrawScene(s *scene.Scene, cam camera.Camera) {
	view := cam.ViewMatrix()
	projection := cam.ProjectionMatrix()

	for i := range s.Objects {
		o := &s.Objects[i]
		bs, ok := r.shapes[o.Shape]
		if !ok {
			continue
		}
		prog := r.programs[o.Program]
		prog.Use()

		prog.SetMat4("modelMat", o.Model)
		prog.SetMat4("viewMat", view)
		prog.SetMat4("projectionMat", projection)
		prog.SetMat3("normalMat", view.Mul(o.Model).NormalMatrix())

		setMaterial(prog, o.Material)
		setLight(prog, s.Light)

		if id, ok := r.textures[o.Texture]; ok {
			texture.Bind(id)
			prog.SetInt("tex", 0)
		}

		bs.Draw(prog)
	}
}

func setMaterial(p *shader.Program, m scene.Material) {
	p.SetVec4("material.ambient", m.Ambient)
	p.SetVec4("material.diffuse", m.Diffuse)
	p.SetVec4("material.specular", m.Specular)
	p.SetFloat("material.ka", m.Ka)
	p.SetFloat("material.kd", m.Kd)
	p.SetFloat("material.ks", m.Ks)
	p.SetFloat("material.shininess", m.Shininess)
}

func setLight(p *shader.Program, l scene.Light) {
	p.SetVec4("aLightColor", l.Ambient)
	p.SetVec4("pLightPosition", l.PointPosition)
	p.SetVec4("pLightColor", l.PointColor)
}
