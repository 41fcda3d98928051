// Package physics defines the narrow contract the simulation needs from a
// rigid-body engine, plus the value types that cross it.
package physics

import "errors"

var (
	// ErrInvalidHandle is returned when a builder call names an unknown body.
	ErrInvalidHandle = errors.New("physics: invalid handle")
	// ErrInvalidShape is returned for non-positive or non-finite dimensions.
	ErrInvalidShape = errors.New("physics: invalid shape")
)

// BodyDef describes a dynamic body. Mass is applied as-is and does not
// depend on the colliders attached later.
type BodyDef struct {
	Position       Vector2D
	Angle          float64
	LinearDamping  float64
	AngularDamping float64
	Mass           float64
	GravityScale   float64
}

// Material holds the surface properties of a collider.
type Material struct {
	Friction    float64
	Restitution float64
}

// Transform is a body's world position and rotation in radians.
type Transform struct {
	Position Vector2D
	Angle    float64
}

// ContactPair is the narrow-phase state of two colliders.
type ContactPair struct {
	HasActiveContact bool
	Points           int
}

// Builder allocates bodies, colliders and joints.
type Builder interface {
	CreateDynamicBody(def BodyDef) (BodyRef, error)
	CreateStaticBody(position Vector2D) (BodyRef, error)
	AttachBoxCollider(body BodyRef, halfExtents Vector2D, mat Material, filter Filter) (ColliderRef, error)
	AttachCircleCollider(body BodyRef, radius float64, mat Material, filter Filter) (ColliderRef, error)
	CreatePointConstraint(bodyA BodyRef, localA Vector2D, bodyB BodyRef, localB Vector2D) (JointRef, error)
}

// Actuator applies forces. Torque lasts for the next step only.
// Calls with a handle the engine never issued panic.
type Actuator interface {
	ApplyImpulse(body BodyRef, impulse Vector2D)
	ApplyTorque(body BodyRef, torque float64)
	ApplyTorqueImpulse(body BodyRef, impulse float64)
}

// Reader exposes body state.
type Reader interface {
	Transform(body BodyRef) Transform
	Velocity(body BodyRef) (linear Vector2D, angular float64)
}

// ContactQuery reports whether two colliders currently form a pair.
// ok is false when the engine holds no pair for them at all.
type ContactQuery interface {
	ContactPair(a, b ColliderRef) (pair ContactPair, ok bool)
}

// Stepper advances the world by dt seconds.
type Stepper interface {
	Step(gravity Vector2D, dt float64)
}

// Engine is the full contract.
type Engine interface {
	Builder
	Actuator
	Reader
	ContactQuery
	Stepper
}
