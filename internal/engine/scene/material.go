package scene

// Material holds the Phong surface parameters of an object.
type Material struct {
	Ambient   [4]float32 `yaml:"ambient"`
	Diffuse   [4]float32 `yaml:"diffuse"`
	Specular  [4]float32 `yaml:"specular"`
	Ka        float32    `yaml:"ka"`
	Kd        float32    `yaml:"kd"`
	Ks        float32    `yaml:"ks"`
	Shininess float32    `yaml:"shininess"`
}

// DefaultMaterial is a white surface with a white highlight.
func DefaultMaterial() Material {
	return Material{
		Ambient:   [4]float32{1, 1, 1, 1},
		Diffuse:   [4]float32{1, 1, 1, 1},
		Specular:  [4]float32{1, 1, 1, 1},
		Ka:        0.5,
		Kd:        0.7,
		Ks:        1,
		Shininess: 10,
	}
}

// Light is the scene lighting: an ambient term plus one point light.
type Light struct {
	Ambient       [4]float32 `yaml:"ambient"`
	PointPosition [4]float32 `yaml:"point_position"`
	PointColor    [4]float32 `yaml:"point_color"`
}

// DefaultLight returns grey ambient light and a white point light above
// and to the left of the origin.
func DefaultLight() Light {
	return Light{
		Ambient:       [4]float32{0.5, 0.5, 0.5, 1},
		PointPosition: [4]float32{-30, 60, 20, 1},
		PointColor:    [4]float32{1, 1, 1, 1},
	}
}
