package scene

import (
	"fmt"

	"github.com/Faultbox/meshforge/pkg/math"
)

// Transform is one step of an object's model transform. Exactly one field
// is set. Rotations are in degrees.
type Transform struct {
	Scale     *[3]float32 `yaml:"scale,omitempty"`
	Translate *[3]float32 `yaml:"translate,omitempty"`
	RotateX   *float32    `yaml:"rotate_x,omitempty"`
	RotateY   *float32    `yaml:"rotate_y,omitempty"`
	RotateZ   *float32    `yaml:"rotate_z,omitempty"`
}

// matrix returns the step's matrix.
func (t Transform) matrix() (math.Mat4, error) {
	var m math.Mat4
	set := 0
	if t.Scale != nil {
		m = math.Scale(t.Scale[0], t.Scale[1], t.Scale[2])
		set++
	}
	if t.Translate != nil {
		m = math.Translate(t.Translate[0], t.Translate[1], t.Translate[2])
		set++
	}
	if t.RotateX != nil {
		m = math.RotateX(math.Radians(*t.RotateX))
		set++
	}
	if t.RotateY != nil {
		m = math.RotateY(math.Radians(*t.RotateY))
		set++
	}
	if t.RotateZ != nil {
		m = math.RotateZ(math.Radians(*t.RotateZ))
		set++
	}
	if set != 1 {
		return math.Mat4{}, fmt.Errorf("%w: %d operations in one step", ErrBadTransform, set)
	}
	return m, nil
}

// ModelMatrix composes steps in order, each one applied after the
// previous (pre-multiplied).
func ModelMatrix(steps []Transform) (math.Mat4, error) {
	model := math.Identity()
	for i, t := range steps {
		m, err := t.matrix()
		if err != nil {
			return math.Mat4{}, fmt.Errorf("step %d: %w", i, err)
		}
		model = m.Mul(model)
	}
	return model, nil
}
