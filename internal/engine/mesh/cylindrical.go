package mesh

import (
	gomath "math"
)

// CylindricalU returns the azimuthal texture coordinate of a point around
// the Y axis. Points on the axes map to fixed quarters: -X 0.5, +X 1.0,
// -Z 0.25, +Z 0.75.
func CylindricalU(x, z float32) float32 {
	switch {
	case z == 0:
		if x < 0 {
			return 0.5
		}
		return 1.0
	case x == 0:
		if z < 0 {
			return 0.25
		}
		return 0.75
	}

	phi := gomath.Atan(float64(x) / float64(z))
	u := float32(phi/(2*gomath.Pi)) + 0.25
	if z > 0 {
		u += 0.5
	}
	return u
}

// ProjectCylindrical replaces the builder's texture coordinates with a
// cylindrical projection of its positions, then repairs the seam.
// v is the raw y coordinate.
func (b *Builder) ProjectCylindrical() {
	b.uv = b.uv[:0]
	for i := 0; i < b.vertexCount; i++ {
		p := b.positions[i*PositionComponents:]
		b.uv = append(b.uv, CylindricalU(p[0], p[2]), p[1])
	}
	RepairSeam(b.uv)
}

// RepairSeam folds the wraparound value u == 1.0 onto 0.0 in triangles
// that also reach into the u < 0.5 half, so they do not stretch across the
// whole texture. uv holds (u, v) pairs, three per triangle; a trailing
// partial triangle is ignored. It returns the number of corners rewritten.
func RepairSeam(uv []float32) int {
	const triangle = 3 * UVComponents

	var rewritten int
	for f := 0; f+triangle <= len(uv); f += triangle {
		var front, endpoint bool
		for c := 0; c < 3; c++ {
			u := uv[f+c*UVComponents]
			if u < 0.5 {
				front = true
			}
			if u == 1.0 {
				endpoint = true
			}
		}
		if !front || !endpoint {
			continue
		}
		for c := 0; c < 3; c++ {
			if uv[f+c*UVComponents] == 1.0 {
				uv[f+c*UVComponents] = 0
				rewritten++
			}
		}
	}
	return rewritten
}
