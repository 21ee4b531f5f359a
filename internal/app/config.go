package app

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newera/internal/camera"
	"newera/internal/sims/creatures"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed       int64
	TPS        int
	Width      int
	Height     int
	TuningPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, TPS: 60, Width: 1280, Height: 720}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for spawning the herd (0 uses the tuning seed)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.TuningPath, "config", c.TuningPath, "optional YAML tuning file")
}

// CameraTuning overrides the first-person controller.
type CameraTuning struct {
	Fovy        float64 `yaml:"fovy"`
	EyeHeight   float64 `yaml:"eye_height"`
	MoveSpeed   float64 `yaml:"move_speed"`
	SprintMult  float64 `yaml:"sprint_mult"`
	Sensitivity float64 `yaml:"sensitivity"`
	StartX      float64 `yaml:"start_x"`
	StartZ      float64 `yaml:"start_z"`
}

// Tuning is the optional YAML file layout. Keys left out keep their defaults.
type Tuning struct {
	Herd   creatures.Config `yaml:"herd"`
	Camera CameraTuning     `yaml:"camera"`
}

// DefaultTuning returns the built-in tuning.
func DefaultTuning() Tuning {
	cam := camera.New(100, 100)
	return Tuning{
		Herd: creatures.DefaultConfig(),
		Camera: CameraTuning{
			Fovy:        cam.Fovy,
			EyeHeight:   cam.EyeHeight,
			MoveSpeed:   cam.MoveSpeed,
			SprintMult:  cam.SprintMult,
			Sensitivity: cam.Sensitivity,
			StartX:      100,
			StartZ:      100,
		},
	}
}

// LoadTuning reads path over the defaults. An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate checks the herd parameters and the camera settings.
func (t Tuning) Validate() error {
	if err := t.Herd.Params.Validate(); err != nil {
		return fmt.Errorf("herd: %w", err)
	}
	c := t.Camera
	if !(c.Fovy > 0 && c.Fovy < 180) {
		return fmt.Errorf("camera: fovy %v outside (0, 180)", c.Fovy)
	}
	if !(c.MoveSpeed >= 0) || !(c.SprintMult >= 0) || !(c.Sensitivity >= 0) {
		return fmt.Errorf("camera: move_speed, sprint_mult and sensitivity must not be negative")
	}
	return nil
}

// NewCamera builds the first-person camera described by the tuning.
func (t Tuning) NewCamera(ground func(x, z float64) float64) *camera.FirstPerson {
	c := camera.New(t.Camera.StartX, t.Camera.StartZ)
	c.Fovy = t.Camera.Fovy
	c.EyeHeight = t.Camera.EyeHeight
	c.MoveSpeed = t.Camera.MoveSpeed
	c.SprintMult = t.Camera.SprintMult
	c.Sensitivity = t.Camera.Sensitivity
	c.Follow(ground)
	return c
}

// HerdConfig returns the herd configuration, with seed taking precedence when
// it is non-zero.
func (t Tuning) HerdConfig(seed int64) creatures.Config {
	cfg := t.Herd
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg
}
