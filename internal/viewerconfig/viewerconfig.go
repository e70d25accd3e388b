package viewerconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default viewer config file, relative to the process working directory.
const ConfigPath = "config/pyramid.yaml"

// Environment overrides, read after .env is loaded.
const (
	EnvConfigPath = "PYRAMID_CONFIG"
	EnvSeed       = "PYRAMID_SEED"
)

// Window describes the viewer window.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
}

// Camera is the initial free-fly camera and its per-frame keyboard step.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy"`
	Speed    float32    `yaml:"speed"`
}

// Grid is the reference grid on the XZ plane.
type Grid struct {
	Slices  int32   `yaml:"slices"`
	Spacing float32 `yaml:"spacing"`
}

// Prefs holds viewer preferences. Seed 0 means seed from the clock.
type Prefs struct {
	Window  Window `yaml:"window"`
	Camera  Camera `yaml:"camera"`
	Grid    Grid   `yaml:"grid"`
	ShowFPS bool   `yaml:"show_fps"`
	Seed    int64  `yaml:"seed,omitempty"`
}

// Default returns the stock viewer: 1080x625 at 60 FPS, camera at (5,5,5), 20x5 grid.
func Default() Prefs {
	return Prefs{
		Window: Window{
			Width:  1080,
			Height: 625,
			Title:  "Algebra - Stepped Pyramid",
			FPS:    60,
		},
		Camera: Camera{
			Position: [3]float32{5, 5, 5},
			Target:   [3]float32{0, 0, 0},
			Fovy:     45,
			Speed:    0.2,
		},
		Grid: Grid{
			Slices:  20,
			Spacing: 5,
		},
	}
}

// Path returns the config path, honoring PYRAMID_CONFIG.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return ConfigPath
}

// Load reads Path() and applies the PYRAMID_SEED override.
func Load() (Prefs, error) {
	p := LoadFile(Path())
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		p.Seed = seed
	}
	return p, nil
}

// LoadFile reads preferences from path. If the file is missing or invalid, returns Default().
// Fields absent from the file keep their default values.
func LoadFile(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
