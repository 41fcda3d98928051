// pkg/vehicle/control.go
package vehicle

import (
	"math"

	"github.com/opd-ai/go-boink/pkg/physics"
)

// Drive applies the same torque to both wheels for the next step.
// Positive torque rolls the vehicle toward +x on the ground.
func (v *Vehicle) Drive(torque float64) {
	v.engine.ApplyTorque(v.parts[FrontWheel].Body(), torque)
	v.engine.ApplyTorque(v.parts[BackWheel].Body(), torque)
}

// Spin applies a torque impulse to the chassis.
func (v *Vehicle) Spin(impulse float64) {
	v.engine.ApplyTorqueImpulse(v.parts[ChassisBody].Body(), impulse)
}

// Jump applies the configured upward impulse to the chassis when grounded
// and reports whether it did. The state is left for the classifier.
func (v *Vehicle) Jump() bool {
	if v.state != Grounded {
		return false
	}
	v.engine.ApplyImpulse(v.parts[ChassisBody].Body(), physics.Up.Scale(v.cfg.JumpImpulse))
	return true
}

// Boost pushes the chassis along ForwardAxis with magnitude force and
// returns the impulse applied.
func (v *Vehicle) Boost(force float64) physics.Vector2D {
	chassis := v.parts[ChassisBody].Body()
	impulse := ForwardAxis(v.engine.Transform(chassis).Angle).Scale(force)
	v.engine.ApplyImpulse(chassis, impulse)
	return impulse
}

// ForwardAxis is the unit nose direction for a chassis angle. Past a
// quarter turn either way the axis is reversed so it follows the side the
// vehicle visually faces.
func ForwardAxis(angle float64) physics.Vector2D {
	axis := physics.FromAngle(angle, 1)
	if math.Abs(physics.WrapAngle(angle)) > math.Pi/2 {
		return axis.Neg()
	}
	return axis
}
