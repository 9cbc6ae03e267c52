package math

// Vec4 is a 4-component vector, used for homogeneous positions and RGBA colors.
type Vec4 [4]float32

// Point returns the homogeneous point (x, y, z, 1).
func Point(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// XYZ drops the fourth component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
