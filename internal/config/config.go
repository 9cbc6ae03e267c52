// Package config handles meshforge configuration loading and management.
package config

// Config holds all tool and viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
}

// AssetsConfig holds model, texture and scene locations.
type AssetsConfig struct {
	ModelDir   string        `yaml:"model_dir"`
	TextureDir string        `yaml:"texture_dir"`
	Scene      string        `yaml:"scene"`
	Shapes     []ShapeConfig `yaml:"shapes"`
}

// ShapeConfig registers one OBJ file in the shape catalog.
type ShapeConfig struct {
	Name        string `yaml:"name"`
	Path        string `yaml:"path"` // relative paths resolve against ModelDir
	Cylindrical bool   `yaml:"cylindrical"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Format string `yaml:"format"` // "glb" or "gltf"
	Dir    string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     870,
			Title:      "The Color of Tea",
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Assets: AssetsConfig{
			ModelDir:   "model",
			TextureDir: "texture",
			Scene:      "scene.yaml",
			Shapes: []ShapeConfig{
				{Name: "apple", Path: "Apple.obj"},
				{Name: "cookies1", Path: "Cookies1.obj"},
				{Name: "cookies2", Path: "Cookies2.obj"},
				{Name: "cup", Path: "Cup.obj", Cylindrical: true},
				{Name: "doughnut", Path: "Doughnut.obj"},
				{Name: "foliage", Path: "Foliage.obj"},
				{Name: "plate", Path: "Plate.obj"},
				{Name: "pot", Path: "Pot.obj"},
				{Name: "spoon", Path: "Spoon.obj"},
				{Name: "table", Path: "Table.obj"},
				{Name: "teapot", Path: "Teapot.obj"},
			},
		},
		Export: ExportConfig{
			Format: "glb",
			Dir:    "export",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
