package shapes

import (
	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// Quad is the name of the built-in two-sided unit quad.
const Quad = "quad"

var (
	quadVertices = [4]math.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: -1, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}

	quadUV = [4]math.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}

	quadNormals = [2]math.Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}

	// {position, uv, normal} per corner; front face first, then the back
	// face with reversed winding.
	quadElements = [4][3][3]int{
		{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}},
		{{2, 2, 0}, {1, 1, 0}, {3, 3, 0}},
		{{0, 0, 1}, {2, 2, 1}, {1, 1, 1}},
		{{1, 1, 1}, {2, 2, 1}, {3, 3, 1}},
	}
)

// MakeQuad appends the two-sided quad in the XY plane to b.
func MakeQuad(b *mesh.Builder) {
	for _, tri := range quadElements {
		var p, n [3]math.Vec3
		var uv [3]math.Vec2
		for c, e := range tri {
			p[c] = quadVertices[e[0]]
			uv[c] = quadUV[e[1]]
			n[c] = quadNormals[e[2]]
		}
		b.AddTriangleWithNormalsUV(p[0], n[0], uv[0], p[1], n[1], uv[1], p[2], n[2], uv[2])
	}
}
