// pkg/control/mapper.go
package control

import (
	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/validation"
	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// Tuning holds the force magnitudes issued for held commands.
type Tuning struct {
	DriveTorque       float64 `mapstructure:"drive_torque" json:"drive_torque"`
	AirTorqueImpulse  float64 `mapstructure:"air_torque_impulse" json:"air_torque_impulse"`
	SpinTorqueImpulse float64 `mapstructure:"spin_torque_impulse" json:"spin_torque_impulse"`
	BoostForce        float64 `mapstructure:"boost_force" json:"boost_force"`
}

// DefaultTuning returns the starting magnitudes.
func DefaultTuning() Tuning {
	return Tuning{
		DriveTorque:       500,
		AirTorqueImpulse:  1,
		SpinTorqueImpulse: 1,
		BoostForce:        10,
	}
}

// Vehicle is the set of operations the mapper drives.
type Vehicle interface {
	State() vehicle.State
	Drive(torque float64)
	Spin(impulse float64)
	Jump() bool
	Boost(force float64) physics.Vector2D
}

var _ Vehicle = (*vehicle.Vehicle)(nil)

// Actions reports what Apply did during one tick.
type Actions struct {
	Drove     bool
	AirRolled bool
	Jumped    bool
	Boosted   bool
	Spun      bool
}

// Any reports whether any force was issued.
func (a Actions) Any() bool {
	return a.Drove || a.AirRolled || a.Jumped || a.Boosted || a.Spun
}

// Mapper turns held commands into vehicle operations. Every held command
// is re-applied each tick, except Jump, which fires once per press.
type Mapper struct {
	tuning      Tuning
	jumpPressed bool
}

// NewMapper creates a mapper with the given magnitudes.
func NewMapper(tuning Tuning) *Mapper {
	return &Mapper{tuning: tuning}
}

// Apply issues the forces for one tick. Turning drives the wheels when
// grounded and rolls the chassis when airborne.
func (m *Mapper) Apply(v Vehicle, cmds Commands) Actions {
	var acts Actions

	if dir := cmds.turn(); dir != 0 {
		switch v.State() {
		case vehicle.Grounded:
			v.Drive(dir * m.tuning.DriveTorque)
			acts.Drove = true
		case vehicle.Airborne:
			v.Spin(dir * m.tuning.AirTorqueImpulse)
			acts.AirRolled = true
		}
	}

	if cmds.Has(Jump) {
		if !m.jumpPressed {
			m.jumpPressed = true
			acts.Jumped = v.Jump()
		}
	} else {
		m.jumpPressed = false
	}

	if cmds.Has(Boost) {
		v.Boost(m.tuning.BoostForce)
		acts.Boosted = true
	}

	if dir := cmds.spin(); dir != 0 {
		v.Spin(dir * m.tuning.SpinTorqueImpulse)
		acts.Spun = true
	}

	return acts
}

// JumpLatched reports whether Jump is held since its last press.
func (m *Mapper) JumpLatched() bool {
	return m.jumpPressed
}

// Tuning returns the magnitudes in use.
func (m *Mapper) Tuning() Tuning {
	return m.tuning
}

// Validate checks the magnitudes.
func (t Tuning) Validate() error {
	return validation.Collect(
		validation.NonNegative("drive_torque", t.DriveTorque),
		validation.NonNegative("air_torque_impulse", t.AirTorqueImpulse),
		validation.NonNegative("spin_torque_impulse", t.SpinTorqueImpulse),
		validation.NonNegative("boost_force", t.BoostForce),
	)
}
