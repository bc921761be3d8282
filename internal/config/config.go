// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Model    ModelConfig    `yaml:"model"`
	Render   RenderConfig   `yaml:"render"`
	Window   WindowConfig   `yaml:"window"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ModelConfig holds the model to display.
type ModelConfig struct {
	Path string `yaml:"path"` // OBJ file, empty draws the default cube
}

// RenderConfig holds projection and drawing settings.
type RenderConfig struct {
	FrameRate      float64 `yaml:"frame_rate"`
	CameraDistance float64 `yaml:"camera_distance"`
	MinDepth       float64 `yaml:"min_depth"`
	Axis           string  `yaml:"axis"`
	Background     string  `yaml:"background"` // hex, "#rrggbb"
	Foreground     string  `yaml:"foreground"`
	LineWidth      float64 `yaml:"line_width"`
}

// WindowConfig holds window settings for the interactive viewer.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SnapshotConfig holds settings for headless PNG output.
type SnapshotConfig struct {
	Frames int    `yaml:"frames"`
	OutDir string `yaml:"out_dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Path: "",
		},
		Render: RenderConfig{
			FrameRate:      90,
			CameraDistance: 1.0,
			MinDepth:       1e-3,
			Axis:           "y",
			Background:     "#000000",
			Foreground:     "#00ffff",
			LineWidth:      1,
		},
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "wirespin",
		},
		Snapshot: SnapshotConfig{
			Frames: 1,
			OutDir: "frames",
			Width:  640,
			Height: 480,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
