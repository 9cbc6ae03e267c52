package model

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/internal/logger"
	"github.com/Faultbox/meshforge/pkg/formats"
)

// Build appends every face of obj to b, choosing the append variant from
// the file-level attribute flags. Files without vn records get flat face
// normals when they carry vt records, and no normals otherwise.
func Build(obj *formats.OBJ, b *mesh.Builder) Stats {
	stats := Stats{
		Positions:    len(obj.Positions),
		Normals:      len(obj.Normals),
		TexCoords:    len(obj.TexCoords),
		Faces:        len(obj.Faces),
		HasNormals:   obj.HasNormals,
		HasTexCoords: obj.HasTexCoords,
	}

	for i := range obj.Faces {
		p := obj.Triangle(i)

		switch {
		case obj.HasNormals && obj.HasTexCoords:
			n := obj.TriangleNormals(i)
			uv := obj.TriangleUV(i)
			b.AddTriangleWithNormalsUV(p[0], n[0], uv[0], p[1], n[1], uv[1], p[2], n[2], uv[2])
		case obj.HasNormals:
			n := obj.TriangleNormals(i)
			b.AddTriangleWithNormals(p[0], n[0], p[1], n[1], p[2], n[2])
		case obj.HasTexCoords:
			uv := obj.TriangleUV(i)
			b.AddTriangleWithUV(p[0], uv[0], p[1], uv[1], p[2], uv[2])
		default:
			b.AddTriangle(p[0], p[1], p[2])
		}
	}

	stats.Vertices = b.VertexCount()
	return stats
}

// LoadFile parses the OBJ file at path and appends its triangles to b.
// b is not cleared first.
func LoadFile(path string, b *mesh.Builder) (Stats, error) {
	start := time.Now()

	obj, err := formats.LoadOBJ(path)
	if err != nil {
		return Stats{}, fmt.Errorf("loading model: %w", err)
	}

	stats := Build(obj, b)
	logger.Debug("model loaded",
		zap.String("path", path),
		zap.Int("faces", stats.Faces),
		zap.Int("vertices", stats.Vertices),
		zap.Bool("normals", stats.HasNormals),
		zap.Bool("uv", stats.HasTexCoords),
		zap.Duration("took", time.Since(start)),
	)
	return stats, nil
}
