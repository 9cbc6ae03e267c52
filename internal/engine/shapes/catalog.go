// Package shapes builds named meshes: the built-in quad and the OBJ files
// registered in configuration.
package shapes

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/config"
	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/internal/engine/model"
	"github.com/Faultbox/meshforge/internal/logger"
)

// Entry is one OBJ-backed shape.
type Entry struct {
	Name        string
	Path        string
	Cylindrical bool
}

// Catalog maps shape names to their sources.
type Catalog struct {
	entries map[string]Entry
	log     *zap.Logger
}

// NewCatalog creates a catalog holding only the built-in quad.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]Entry),
		log:     logger.Named("shapes"),
	}
}

// FromConfig creates a catalog from the configured shape list. Relative
// paths resolve against the model directory.
func FromConfig(assets config.AssetsConfig) *Catalog {
	c := NewCatalog()
	for _, s := range assets.Shapes {
		c.Register(Entry{
			Name:        s.Name,
			Path:        assets.ShapePath(s),
			Cylindrical: s.Cylindrical,
		})
	}
	return c
}

// Register adds or replaces an OBJ-backed shape. The name "quad" is
// reserved for the built-in shape.
func (c *Catalog) Register(e Entry) {
	if e.Name == Quad {
		c.log.Warn("shape name reserved, ignoring", zap.String("path", e.Path))
		return
	}
	c.entries[e.Name] = e
}

// Has reports whether name is buildable.
func (c *Catalog) Has(name string) bool {
	if name == Quad {
		return true
	}
	_, ok := c.entries[name]
	return ok
}

// Names returns every buildable shape name, sorted.
func (c *Catalog) Names() []string {
	names := []string{Quad}
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Make clears b and builds the named shape into it. An unknown name is
// logged and reported as false with a nil error so callers can carry on
// without it; a failed OBJ load is returned as an error.
func (c *Catalog) Make(name string, b *mesh.Builder) (bool, error) {
	b.Clear()

	if name == Quad {
		MakeQuad(b)
		return true, nil
	}

	e, ok := c.entries[name]
	if !ok {
		c.log.Warn("unknown shape, ignoring", zap.String("name", name))
		return false, nil
	}

	if _, err := model.LoadFile(e.Path, b); err != nil {
		return false, fmt.Errorf("shape %s: %w", name, err)
	}
	if e.Cylindrical {
		b.ProjectCylindrical()
	}

	c.log.Debug("shape built",
		zap.String("name", name),
		zap.Int("vertices", b.VertexCount()),
		zap.Bool("cylindrical", e.Cylindrical),
	)
	return true, nil
}
