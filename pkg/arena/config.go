// pkg/arena/config.go
package arena

import (
	"fmt"

	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/validation"
)

// Config describes the walled pitch and where things start.
type Config struct {
	Width         float64          `mapstructure:"width" json:"width"`
	Height        float64          `mapstructure:"height" json:"height"`
	WallThickness float64          `mapstructure:"wall_thickness" json:"wall_thickness"`
	Friction      float64          `mapstructure:"friction" json:"friction"`
	Restitution   float64          `mapstructure:"restitution" json:"restitution"`
	VehicleSpawn  physics.Vector2D `mapstructure:"vehicle_spawn" json:"vehicle_spawn"`
	BallSpawn     physics.Vector2D `mapstructure:"ball_spawn" json:"ball_spawn"`
	Ball          BallConfig       `mapstructure:"ball" json:"ball"`
}

// BallConfig describes the ball. Its mass is Density times its area.
type BallConfig struct {
	Radius         float64 `mapstructure:"radius" json:"radius"`
	Density        float64 `mapstructure:"density" json:"density"`
	Restitution    float64 `mapstructure:"restitution" json:"restitution"`
	Friction       float64 `mapstructure:"friction" json:"friction"`
	GravityScale   float64 `mapstructure:"gravity_scale" json:"gravity_scale"`
	LinearDamping  float64 `mapstructure:"linear_damping" json:"linear_damping"`
	AngularDamping float64 `mapstructure:"angular_damping" json:"angular_damping"`
}

// DefaultConfig returns a 105 x 40 m pitch with 2 m walls.
func DefaultConfig() Config {
	const width, height = 105.0, 40.0
	return Config{
		Width:         width,
		Height:        height,
		WallThickness: 2,
		Friction:      1,
		Restitution:   0,
		VehicleSpawn:  physics.Vector2D{X: 10, Y: height - 10},
		BallSpawn:     physics.Vector2D{X: width / 2, Y: height - 10},
		Ball: BallConfig{
			Radius:         2.5,
			Density:        0.5,
			Restitution:    0.7,
			Friction:       0.5,
			GravityScale:   0.2,
			LinearDamping:  0,
			AngularDamping: 0.1,
		},
	}
}

// Validate checks the geometry and that both spawns lie inside the walls.
func (c Config) Validate() error {
	errs := []error{
		validation.Positive("arena.width", c.Width),
		validation.Positive("arena.height", c.Height),
		validation.Positive("arena.wall_thickness", c.WallThickness),
		validation.NonNegative("arena.friction", c.Friction),
		validation.InRange("arena.restitution", c.Restitution, 0, 1),
		validation.Positive("arena.ball.radius", c.Ball.Radius),
		validation.Positive("arena.ball.density", c.Ball.Density),
		validation.InRange("arena.ball.restitution", c.Ball.Restitution, 0, 1),
		validation.NonNegative("arena.ball.friction", c.Ball.Friction),
		validation.NonNegative("arena.ball.gravity_scale", c.Ball.GravityScale),
		validation.NonNegative("arena.ball.linear_damping", c.Ball.LinearDamping),
		validation.NonNegative("arena.ball.angular_damping", c.Ball.AngularDamping),
	}
	if c.Width > 2*c.WallThickness && c.Height > 2*c.WallThickness {
		inner := c.Interior()
		errs = append(errs,
			insideErr("arena.vehicle_spawn", inner, c.VehicleSpawn),
			insideErr("arena.ball_spawn", inner, c.BallSpawn),
		)
	} else {
		errs = append(errs, validation.Positive("arena.interior", 0))
	}
	return validation.Collect(errs...)
}

// Interior is the open space between the walls.
func (c Config) Interior() physics.Rect {
	t := c.WallThickness
	return physics.RectFromCorner(physics.Vector2D{X: t, Y: t}, c.Width-2*t, c.Height-2*t)
}

func insideErr(field string, r physics.Rect, p physics.Vector2D) error {
	if r.Contains(p) {
		return nil
	}
	return fmt.Errorf("%s %v lies outside the walls", field, p)
}
