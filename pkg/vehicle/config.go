// pkg/vehicle/config.go
package vehicle

import (
	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/validation"
)

// Config holds the rig geometry and tuning. Magnitudes are starting
// points for play-testing, not physical constants.
type Config struct {
	HalfLength       float64          `mapstructure:"half_length" json:"half_length"`
	HalfHeight       float64          `mapstructure:"half_height" json:"half_height"`
	WheelRadius      float64          `mapstructure:"wheel_radius" json:"wheel_radius"`
	FrontWheelOffset physics.Vector2D `mapstructure:"front_wheel_offset" json:"front_wheel_offset"`
	BackWheelOffset  physics.Vector2D `mapstructure:"back_wheel_offset" json:"back_wheel_offset"`
	ChassisMass      float64          `mapstructure:"chassis_mass" json:"chassis_mass"`
	WheelMass        float64          `mapstructure:"wheel_mass" json:"wheel_mass"`
	LinearDamping    float64          `mapstructure:"linear_damping" json:"linear_damping"`
	AngularDamping   float64          `mapstructure:"angular_damping" json:"angular_damping"`
	ChassisFriction  float64          `mapstructure:"chassis_friction" json:"chassis_friction"`
	WheelFriction    float64          `mapstructure:"wheel_friction" json:"wheel_friction"`
	Restitution      float64          `mapstructure:"restitution" json:"restitution"`
	JumpImpulse      float64          `mapstructure:"jump_impulse" json:"jump_impulse"`
}

// DefaultConfig returns a 6 x 1 m hull carried on two 0.5 m wheels.
func DefaultConfig() Config {
	return Config{
		HalfLength:       3.0,
		HalfHeight:       0.5,
		WheelRadius:      0.5,
		FrontWheelOffset: physics.Vector2D{X: 1.5, Y: 0.6},
		BackWheelOffset:  physics.Vector2D{X: -1.5, Y: 0.6},
		ChassisMass:      10,
		WheelMass:        2,
		LinearDamping:    0.5,
		AngularDamping:   1.0,
		ChassisFriction:  0.4,
		WheelFriction:    1.0,
		Restitution:      0.1,
		JumpImpulse:      120,
	}
}

// Validate checks every field and reports all failures at once.
func (c Config) Validate() error {
	return validation.Collect(
		validation.Positive("half_length", c.HalfLength),
		validation.Positive("half_height", c.HalfHeight),
		validation.Positive("wheel_radius", c.WheelRadius),
		validation.Finite("front_wheel_offset.x", c.FrontWheelOffset.X),
		validation.Finite("front_wheel_offset.y", c.FrontWheelOffset.Y),
		validation.Finite("back_wheel_offset.x", c.BackWheelOffset.X),
		validation.Finite("back_wheel_offset.y", c.BackWheelOffset.Y),
		validation.Positive("chassis_mass", c.ChassisMass),
		validation.Positive("wheel_mass", c.WheelMass),
		validation.Positive("linear_damping", c.LinearDamping),
		validation.Positive("angular_damping", c.AngularDamping),
		validation.NonNegative("chassis_friction", c.ChassisFriction),
		validation.NonNegative("wheel_friction", c.WheelFriction),
		validation.InRange("restitution", c.Restitution, 0, 1),
		validation.NonNegative("jump_impulse", c.JumpImpulse),
	)
}

// Offset returns the chassis-local pin point of a wheel role.
func (c Config) Offset(role Role) physics.Vector2D {
	switch role {
	case FrontWheel:
		return c.FrontWheelOffset
	case BackWheel:
		return c.BackWheelOffset
	default:
		return physics.Vector2D{}
	}
}
