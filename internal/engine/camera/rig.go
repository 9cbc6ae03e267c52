package camera

import "github.com/Faultbox/meshforge/pkg/math"

// Rig holds the scene cameras and which one is active. Camera 0 can be
// animated around the scene on its orbit.
type Rig struct {
	Cameras   []Camera
	Active    int
	Orbit     Orbit
	Animating bool

	home math.Vec3
}

// NewRig creates a rig with camera 0 active. The orbit radius and height
// are taken from camera 0's starting position.
func NewRig(cameras ...Camera) *Rig {
	r := &Rig{Cameras: cameras}
	if len(cameras) > 0 {
		p := cameras[0].Position
		r.home = p
		r.Orbit = Orbit{
			Radius: math.Vec3{X: p.X, Z: p.Z}.Length(),
			Height: p.Y,
			Step:   0.75,
		}
	}
	return r
}

// DefaultRig creates the three standard scene cameras for the given
// viewport aspect ratio: front, side and top.
func DefaultRig(aspect float32) *Rig {
	return NewRig(
		New(math.Vec3{X: 0, Y: 3.65, Z: 11.3}, math.Vec3{X: 0, Y: 1.5, Z: 0}, 30, aspect, 1, 100),
		New(math.Vec3{X: -3.2, Y: 2.8, Z: 5}, math.Vec3{X: 2, Y: 1.2, Z: -1.4}, 30, aspect, 1, 100),
		New(math.Vec3{X: -0.3, Y: 15, Z: 4}, math.Vec3{X: 0, Y: 0.8, Z: 0}, 30, aspect, 1, 100),
	)
}

// Current returns the active camera.
func (r *Rig) Current() Camera {
	return r.Cameras[r.Active]
}

// Select activates camera i. Out-of-range indices are ignored.
func (r *Rig) Select(i int) bool {
	if i < 0 || i >= len(r.Cameras) {
		return false
	}
	r.Active = i
	return true
}

// SetAspect updates every camera after a viewport resize.
func (r *Rig) SetAspect(aspect float32) {
	for i := range r.Cameras {
		r.Cameras[i].Aspect = aspect
	}
}

// Tick advances the orbit of camera 0 when animating. It reports whether
// a camera moved.
func (r *Rig) Tick() bool {
	if !r.Animating || len(r.Cameras) == 0 {
		return false
	}
	r.Orbit.Advance()
	r.Cameras[0].Position = r.Orbit.Position()
	return true
}

// Reset puts camera 0 back at its starting position and rewinds the orbit.
func (r *Rig) Reset() {
	if len(r.Cameras) == 0 {
		return
	}
	r.Orbit.Angle = 0
	r.Cameras[0].Position = r.home
}
