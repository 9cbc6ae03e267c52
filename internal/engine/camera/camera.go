// Package camera provides the fixed scene cameras and the rig that
// switches between them.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshforge/pkg/math"
)

// Camera is a perspective camera looking from Position at LookAt.
type Camera struct {
	Position math.Vec3
	LookAt   math.Vec3
	Up       math.Vec3

	FOV    float32 // vertical, degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// New creates a camera with +Y up.
func New(position, lookAt math.Vec3, fov, aspect, near, far float32) Camera {
	return Camera{
		Position: position,
		LookAt:   lookAt,
		Up:       math.Vec3{Y: 1},
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// ViewMatrix returns the world-to-eye transform.
func (c Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.LookAt, c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Orbit holds the animated rotation of a camera around the Y axis.
type Orbit struct {
	Radius float32
	Height float32
	Step   float32 // degrees per tick
	Angle  float32 // degrees, [0, 360)
}

// Position returns the point on the orbit for the current angle.
func (o Orbit) Position() math.Vec3 {
	rad := math.Radians(o.Angle)
	return math.Vec3{
		X: o.Radius * math32.Sin(rad),
		Y: o.Height,
		Z: o.Radius * math32.Cos(rad),
	}
}

// Advance moves the orbit one step, wrapping at 360 degrees.
func (o *Orbit) Advance() {
	o.Angle += o.Step
	if o.Angle >= 360 {
		o.Angle = 0
	}
}
