// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/opd-ai/go-boink/pkg/arena"
	"github.com/opd-ai/go-boink/pkg/control"
	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/validation"
	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// EnvPrefix is prepended to every environment override, so
// vehicle.jump_impulse is read from BOINK_VEHICLE_JUMP_IMPULSE.
const EnvPrefix = "BOINK"

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// SessionConfig contains configuration for a play session
type SessionConfig struct {
	LogLevel string         `mapstructure:"log_level" json:"log_level"`
	Window   WindowConfig   `mapstructure:"window" json:"window"`
	Arena    arena.Config   `mapstructure:"arena" json:"arena"`
	Vehicle  vehicle.Config `mapstructure:"vehicle" json:"vehicle"`
	Controls control.Tuning `mapstructure:"controls" json:"controls"`
	Physics  PhysicsConfig  `mapstructure:"physics" json:"physics"`
}

// WindowConfig contains display settings for the graphical front end
type WindowConfig struct {
	Title      string `mapstructure:"title" json:"title"`
	Width      int    `mapstructure:"width" json:"width"`
	Height     int    `mapstructure:"height" json:"height"`
	Fullscreen bool   `mapstructure:"fullscreen" json:"fullscreen"`
	VSync      bool   `mapstructure:"vsync" json:"vsync"`
}

// PhysicsConfig contains world and stepping configuration.
// A FixedStep of zero steps the world once per frame with the frame delta.
type PhysicsConfig struct {
	Gravity       physics.Vector2D `mapstructure:"gravity" json:"gravity"`
	FixedStep     float64          `mapstructure:"fixed_step" json:"fixed_step"`
	MaxSubSteps   int              `mapstructure:"max_sub_steps" json:"max_sub_steps"`
	MaxFrameDelta float64          `mapstructure:"max_frame_delta" json:"max_frame_delta"`
	Iterations    int              `mapstructure:"iterations" json:"iterations"`
}

// LoadConfig loads a configuration from a JSON file layered over the
// defaults, then applies BOINK_* environment overrides. An empty path
// skips the file.
func LoadConfig(path string) (*SessionConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg SessionConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFromEnv returns the defaults with environment overrides applied.
func LoadConfigFromEnv() (*SessionConfig, error) {
	return LoadConfig("")
}

// SaveConfig saves a configuration to a file
func SaveConfig(cfg *SessionConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default session configuration
func DefaultConfig() *SessionConfig {
	return &SessionConfig{
		LogLevel: "INFO",
		Window: WindowConfig{
			Title:  "boink",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Arena:    arena.DefaultConfig(),
		Vehicle:  vehicle.DefaultConfig(),
		Controls: control.DefaultTuning(),
		Physics: PhysicsConfig{
			Gravity:       physics.Vector2D{X: 0, Y: 9.81},
			FixedStep:     1.0 / 120.0,
			MaxSubSteps:   8,
			MaxFrameDelta: 0.1,
			Iterations:    10,
		},
	}
}

// Validate checks every section and reports all failures at once.
func (c *SessionConfig) Validate() error {
	errs := []error{
		c.validateLogLevel(),
		c.validateWindow(),
		c.Physics.validate(),
		c.Arena.Validate(),
		c.Vehicle.Validate(),
		c.Controls.Validate(),
	}
	if err := validation.Collect(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *SessionConfig) validateLogLevel() error {
	switch strings.ToUpper(strings.TrimSpace(c.LogLevel)) {
	case "", "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
		return nil
	}
	return fmt.Errorf("log_level %q is not one of DEBUG, INFO, WARN or ERROR", c.LogLevel)
}

func (c *SessionConfig) validateWindow() error {
	title, err := validation.Title(c.Window.Title)
	if err != nil {
		return fmt.Errorf("window.title: %w", err)
	}
	c.Window.Title = title
	return validation.Collect(
		validation.PositiveInt("window.width", c.Window.Width),
		validation.PositiveInt("window.height", c.Window.Height),
	)
}

func (p PhysicsConfig) validate() error {
	return validation.Collect(
		validation.Finite("physics.gravity.x", p.Gravity.X),
		validation.Finite("physics.gravity.y", p.Gravity.Y),
		validation.NonNegative("physics.fixed_step", p.FixedStep),
		validation.PositiveInt("physics.max_sub_steps", p.MaxSubSteps),
		validation.Positive("physics.max_frame_delta", p.MaxFrameDelta),
		validation.PositiveInt("physics.iterations", p.Iterations),
	)
}

// newViper returns an isolated viper instance with every default key
// registered, so AutomaticEnv can resolve nested overrides.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults, err := flatten(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to register defaults: %w", err)
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v, nil
}

// flatten turns the JSON form of cfg into dotted leaf keys.
func flatten(cfg *SessionConfig) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	out := make(map[string]any)
	walk("", tree, out)
	return out, nil
}

func walk(prefix string, node map[string]any, out map[string]any) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			walk(key, child, out)
			continue
		}
		out[key] = v
	}
}
