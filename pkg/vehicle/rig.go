// Package vehicle assembles the car rig and implements its ground/air
// classification and control operations.
package vehicle

import (
	"github.com/opd-ai/go-boink/pkg/logging"
	"github.com/opd-ai/go-boink/pkg/physics"
)

// Engine is the subset of physics.Engine a vehicle needs after construction
// plus the builder used to create it.
type Engine interface {
	physics.Builder
	physics.Actuator
	physics.Reader
}

// Vehicle is a chassis with two wheels pinned to it. The physics engine
// owns the bodies; the vehicle only holds references to them.
type Vehicle struct {
	engine   Engine
	cfg      Config
	position physics.Vector2D
	parts    [numRoles]Part
	joints   [2]physics.JointRef
	state    State
}

// New builds the rig at spawn: chassis, front wheel, back wheel, then the
// two pins. Any engine failure aborts construction and no vehicle is
// returned.
func New(engine Engine, spawn physics.Vector2D, cfg Config) (*Vehicle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid vehicle config")
	}

	v := &Vehicle{
		engine:   engine,
		cfg:      cfg,
		position: spawn,
		state:    Grounded,
	}

	chassis, err := v.buildChassis(spawn)
	if err != nil {
		return nil, err
	}
	v.parts[ChassisBody] = chassis

	for _, role := range []Role{FrontWheel, BackWheel} {
		wheel, err := v.buildWheel(role, spawn.Add(cfg.Offset(role)))
		if err != nil {
			return nil, err
		}
		v.parts[role] = wheel
	}

	for i, role := range []Role{FrontWheel, BackWheel} {
		joint, err := engine.CreatePointConstraint(
			v.parts[role].Body(), physics.Vector2D{},
			chassis.Body(), cfg.Offset(role),
		)
		if err != nil {
			return nil, logging.WrapError(err, "pin %s to chassis", role)
		}
		v.joints[i] = joint
	}

	return v, nil
}

func (v *Vehicle) bodyDef(position physics.Vector2D, mass float64) physics.BodyDef {
	return physics.BodyDef{
		Position:       position,
		LinearDamping:  v.cfg.LinearDamping,
		AngularDamping: v.cfg.AngularDamping,
		Mass:           mass,
		GravityScale:   1,
	}
}

func (v *Vehicle) buildChassis(spawn physics.Vector2D) (*BodyPart, error) {
	body, err := v.engine.CreateDynamicBody(v.bodyDef(spawn, v.cfg.ChassisMass))
	if err != nil {
		return nil, logging.WrapError(err, "create %s body", ChassisBody)
	}
	halfExtents := physics.Vector2D{X: v.cfg.HalfLength, Y: v.cfg.HalfHeight}
	collider, err := v.engine.AttachBoxCollider(body, halfExtents, physics.Material{
		Friction:    v.cfg.ChassisFriction,
		Restitution: v.cfg.Restitution,
	}, ChassisFilter)
	if err != nil {
		return nil, logging.WrapError(err, "attach %s collider", ChassisBody)
	}
	return &BodyPart{rigPart: rigPart{body: body, collider: collider}, HalfExtents: halfExtents}, nil
}

func (v *Vehicle) buildWheel(role Role, position physics.Vector2D) (*WheelPart, error) {
	body, err := v.engine.CreateDynamicBody(v.bodyDef(position, v.cfg.WheelMass))
	if err != nil {
		return nil, logging.WrapError(err, "create %s body", role)
	}
	collider, err := v.engine.AttachCircleCollider(body, v.cfg.WheelRadius, physics.Material{
		Friction:    v.cfg.WheelFriction,
		Restitution: v.cfg.Restitution,
	}, WheelFilter)
	if err != nil {
		return nil, logging.WrapError(err, "attach %s collider", role)
	}
	return &WheelPart{rigPart: rigPart{body: body, collider: collider}, Radius: v.cfg.WheelRadius}, nil
}

// Part returns the part playing role. It panics for a role outside the rig.
func (v *Vehicle) Part(role Role) Part {
	if role >= numRoles {
		panic("vehicle: no part for role " + role.String())
	}
	return v.parts[role]
}

// Chassis returns the hull part.
func (v *Vehicle) Chassis() *BodyPart {
	return v.parts[ChassisBody].(*BodyPart)
}

// Wheel returns a wheel part. It panics if role is not a wheel.
func (v *Vehicle) Wheel(role Role) *WheelPart {
	wheel, ok := v.Part(role).(*WheelPart)
	if !ok {
		panic("vehicle: " + role.String() + " is not a wheel")
	}
	return wheel
}

// Joints returns the front and back wheel pins.
func (v *Vehicle) Joints() [2]physics.JointRef {
	return v.joints
}

// Config returns the tuning the vehicle was built with.
func (v *Vehicle) Config() Config {
	return v.cfg
}
