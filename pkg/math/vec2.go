// Package math provides the small vector and matrix types used by meshes,
// cameras and object transforms.
package math

// Vec2 is a 2D vector. Texture coordinates use X as u and Y as v.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}
