// Package physicstest provides a recording physics.Engine for unit tests
// that must not depend on a real integrator.
package physicstest

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-boink/pkg/physics"
)

// CallKind names an Actuator or Stepper call.
type CallKind string

const (
	CallImpulse       CallKind = "impulse"
	CallTorque        CallKind = "torque"
	CallTorqueImpulse CallKind = "torque_impulse"
	CallStep          CallKind = "step"
)

// Call is one recorded Actuator or Stepper call.
type Call struct {
	Kind    CallKind
	Body    physics.BodyRef
	Vector  physics.Vector2D
	Scalar  float64
	Gravity physics.Vector2D
}

// Body is the recorded creation state of a body.
type Body struct {
	Def       physics.BodyDef
	Static    bool
	Colliders []physics.ColliderRef
}

// Collider is the recorded creation state of a collider.
type Collider struct {
	Body        physics.BodyRef
	HalfExtents physics.Vector2D
	Radius      float64
	Material    physics.Material
	Filter      physics.Filter
}

// Joint is the recorded creation state of a point constraint.
type Joint struct {
	BodyA, BodyB   physics.BodyRef
	LocalA, LocalB physics.Vector2D
}

type pairKey struct{ a, b uint32 }

// Recorder is a physics.Engine that stores everything it is asked to do.
// Transforms and contacts are set by the test; Step never moves anything.
type Recorder struct {
	Bodies    []Body
	Colliders []Collider
	Joints    []Joint
	Calls     []Call

	// FailAfter makes the Nth builder call (1-based) fail when positive.
	FailAfter int

	transforms map[uint32]physics.Transform
	velocities map[uint32]physics.Vector2D
	contacts   map[pairKey]physics.ContactPair
	builds     int
}

// ErrInjected is returned by the builder call selected with FailAfter.
var ErrInjected = errors.New("physicstest: injected failure")

var _ physics.Engine = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		transforms: make(map[uint32]physics.Transform),
		velocities: make(map[uint32]physics.Vector2D),
		contacts:   make(map[pairKey]physics.ContactPair),
	}
}

func (r *Recorder) build() error {
	r.builds++
	if r.FailAfter > 0 && r.builds >= r.FailAfter {
		return fmt.Errorf("build call %d: %w", r.builds, ErrInjected)
	}
	return nil
}

func handle(index int) physics.Handle {
	return physics.Handle{Index: uint32(index), Generation: 1}
}

func (r *Recorder) CreateDynamicBody(def physics.BodyDef) (physics.BodyRef, error) {
	if err := r.build(); err != nil {
		return physics.BodyRef{}, err
	}
	r.Bodies = append(r.Bodies, Body{Def: def})
	ref := physics.BodyRef{Handle: handle(len(r.Bodies) - 1)}
	r.transforms[ref.Index] = physics.Transform{Position: def.Position, Angle: def.Angle}
	return ref, nil
}

func (r *Recorder) CreateStaticBody(position physics.Vector2D) (physics.BodyRef, error) {
	if err := r.build(); err != nil {
		return physics.BodyRef{}, err
	}
	r.Bodies = append(r.Bodies, Body{Def: physics.BodyDef{Position: position}, Static: true})
	ref := physics.BodyRef{Handle: handle(len(r.Bodies) - 1)}
	r.transforms[ref.Index] = physics.Transform{Position: position}
	return ref, nil
}

func (r *Recorder) AttachBoxCollider(body physics.BodyRef, halfExtents physics.Vector2D, mat physics.Material, filter physics.Filter) (physics.ColliderRef, error) {
	return r.attach(Collider{Body: body, HalfExtents: halfExtents, Material: mat, Filter: filter})
}

func (r *Recorder) AttachCircleCollider(body physics.BodyRef, radius float64, mat physics.Material, filter physics.Filter) (physics.ColliderRef, error) {
	return r.attach(Collider{Body: body, Radius: radius, Material: mat, Filter: filter})
}

func (r *Recorder) attach(c Collider) (physics.ColliderRef, error) {
	if err := r.build(); err != nil {
		return physics.ColliderRef{}, err
	}
	if !r.known(c.Body) {
		return physics.ColliderRef{}, fmt.Errorf("%w: body %v", physics.ErrInvalidHandle, c.Body.Handle)
	}
	r.Colliders = append(r.Colliders, c)
	ref := physics.ColliderRef{Handle: handle(len(r.Colliders) - 1)}
	b := &r.Bodies[c.Body.Index]
	b.Colliders = append(b.Colliders, ref)
	return ref, nil
}

func (r *Recorder) CreatePointConstraint(a physics.BodyRef, localA physics.Vector2D, b physics.BodyRef, localB physics.Vector2D) (physics.JointRef, error) {
	if err := r.build(); err != nil {
		return physics.JointRef{}, err
	}
	if !r.known(a) || !r.known(b) {
		return physics.JointRef{}, physics.ErrInvalidHandle
	}
	r.Joints = append(r.Joints, Joint{BodyA: a, BodyB: b, LocalA: localA, LocalB: localB})
	return physics.JointRef{Handle: handle(len(r.Joints) - 1)}, nil
}

func (r *Recorder) ApplyImpulse(body physics.BodyRef, impulse physics.Vector2D) {
	r.mustKnow(body)
	r.Calls = append(r.Calls, Call{Kind: CallImpulse, Body: body, Vector: impulse})
}

func (r *Recorder) ApplyTorque(body physics.BodyRef, torque float64) {
	r.mustKnow(body)
	r.Calls = append(r.Calls, Call{Kind: CallTorque, Body: body, Scalar: torque})
}

func (r *Recorder) ApplyTorqueImpulse(body physics.BodyRef, impulse float64) {
	r.mustKnow(body)
	r.Calls = append(r.Calls, Call{Kind: CallTorqueImpulse, Body: body, Scalar: impulse})
}

func (r *Recorder) Transform(body physics.BodyRef) physics.Transform {
	r.mustKnow(body)
	return r.transforms[body.Index]
}

func (r *Recorder) Velocity(body physics.BodyRef) (physics.Vector2D, float64) {
	r.mustKnow(body)
	return r.velocities[body.Index], 0
}

func (r *Recorder) ContactPair(a, b physics.ColliderRef) (physics.ContactPair, bool) {
	pair, ok := r.contacts[key(a, b)]
	return pair, ok
}

func (r *Recorder) Step(gravity physics.Vector2D, dt float64) {
	r.Calls = append(r.Calls, Call{Kind: CallStep, Gravity: gravity, Scalar: dt})
}

// SetTransform overrides what Transform reports for body.
func (r *Recorder) SetTransform(body physics.BodyRef, t physics.Transform) {
	r.mustKnow(body)
	r.transforms[body.Index] = t
}

// SetVelocity overrides the linear velocity reported for body.
func (r *Recorder) SetVelocity(body physics.BodyRef, v physics.Vector2D) {
	r.mustKnow(body)
	r.velocities[body.Index] = v
}

// SetContact makes ContactPair(a, b) report a pair with the given state.
func (r *Recorder) SetContact(a, b physics.ColliderRef, active bool) {
	points := 0
	if active {
		points = 1
	}
	r.contacts[key(a, b)] = physics.ContactPair{HasActiveContact: active, Points: points}
}

// ClearContact removes the pair entirely.
func (r *Recorder) ClearContact(a, b physics.ColliderRef) {
	delete(r.contacts, key(a, b))
}

// CallsOf returns recorded calls of one kind, oldest first.
func (r *Recorder) CallsOf(kind CallKind) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps bodies, transforms and contacts.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) known(body physics.BodyRef) bool {
	return body.Valid() && int(body.Index) < len(r.Bodies)
}

func (r *Recorder) mustKnow(body physics.BodyRef) {
	if !r.known(body) {
		panic(fmt.Errorf("%w: body %v", physics.ErrInvalidHandle, body.Handle))
	}
}

func key(a, b physics.ColliderRef) pairKey {
	if a.Index > b.Index {
		a, b = b, a
	}
	return pairKey{a: a.Index, b: b.Index}
}
