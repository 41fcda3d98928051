// Package chipmunk implements physics.Engine on top of the cp port of
// Chipmunk2D.
package chipmunk

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/jakecoffman/cp"

	"github.com/opd-ai/go-boink/pkg/physics"
)

// DefaultIterations is the solver iteration count used when Config leaves it unset.
const DefaultIterations = 10

// Config tunes the underlying cp.Space.
type Config struct {
	Iterations int
}

var spaceGeneration atomic.Uint32

// Space is a physics.Engine backed by a single cp.Space. Handles it issues
// carry the space's generation, so refs from another Space are rejected.
type Space struct {
	space      *cp.Space
	generation uint32

	bodies []*bodyEntry
	shapes []*cp.Shape
	joints []*cp.Constraint
}

type bodyEntry struct {
	body   *cp.Body
	def    physics.BodyDef
	static bool
	shaped bool
}

// New creates an empty space. Gravity is supplied per step.
func New(cfg Config) *Space {
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	return &Space{
		space:      space,
		generation: spaceGeneration.Add(1),
	}
}

var _ physics.Engine = (*Space)(nil)

// CreateDynamicBody adds a body with fixed mass and per-body damping.
func (s *Space) CreateDynamicBody(def physics.BodyDef) (physics.BodyRef, error) {
	if !positive(def.Mass) {
		return physics.BodyRef{}, fmt.Errorf("%w: mass %v", physics.ErrInvalidShape, def.Mass)
	}
	if def.LinearDamping < 0 || def.AngularDamping < 0 {
		return physics.BodyRef{}, fmt.Errorf("%w: negative damping", physics.ErrInvalidShape)
	}

	// Placeholder moment until the first collider sets the real one.
	body := cp.NewBody(def.Mass, cp.MomentForCircle(def.Mass, 0, 1, cp.Vector{}))
	body.SetPosition(vec(def.Position))
	body.SetAngle(def.Angle)

	linear, angular, scale := def.LinearDamping, def.AngularDamping, def.GravityScale
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(scale), damping, dt)
		b.SetVelocityVector(b.Velocity().Mult(1 / (1 + dt*linear)))
		b.SetAngularVelocity(b.AngularVelocity() / (1 + dt*angular))
	})

	s.space.AddBody(body)
	s.bodies = append(s.bodies, &bodyEntry{body: body, def: def})
	return physics.BodyRef{Handle: s.handle(len(s.bodies) - 1)}, nil
}

// CreateStaticBody adds an immovable body.
func (s *Space) CreateStaticBody(position physics.Vector2D) (physics.BodyRef, error) {
	body := cp.NewStaticBody()
	body.SetPosition(vec(position))
	s.space.AddBody(body)
	s.bodies = append(s.bodies, &bodyEntry{body: body, static: true})
	return physics.BodyRef{Handle: s.handle(len(s.bodies) - 1)}, nil
}

// AttachBoxCollider attaches a box centred on the body origin.
func (s *Space) AttachBoxCollider(ref physics.BodyRef, halfExtents physics.Vector2D, mat physics.Material, filter physics.Filter) (physics.ColliderRef, error) {
	entry, err := s.lookupBody(ref)
	if err != nil {
		return physics.ColliderRef{}, err
	}
	if !positive(halfExtents.X) || !positive(halfExtents.Y) {
		return physics.ColliderRef{}, fmt.Errorf("%w: half extents %v", physics.ErrInvalidShape, halfExtents)
	}
	w, h := 2*halfExtents.X, 2*halfExtents.Y
	if !entry.static && !entry.shaped {
		entry.body.SetMoment(cp.MomentForBox(entry.def.Mass, w, h))
	}
	return s.addShape(entry, cp.NewBox(entry.body, w, h, 0), mat, filter), nil
}

// AttachCircleCollider attaches a circle centred on the body origin.
func (s *Space) AttachCircleCollider(ref physics.BodyRef, radius float64, mat physics.Material, filter physics.Filter) (physics.ColliderRef, error) {
	entry, err := s.lookupBody(ref)
	if err != nil {
		return physics.ColliderRef{}, err
	}
	if !positive(radius) {
		return physics.ColliderRef{}, fmt.Errorf("%w: radius %v", physics.ErrInvalidShape, radius)
	}
	if !entry.static && !entry.shaped {
		entry.body.SetMoment(cp.MomentForCircle(entry.def.Mass, 0, radius, cp.Vector{}))
	}
	return s.addShape(entry, cp.NewCircle(entry.body, radius, cp.Vector{}), mat, filter), nil
}

func (s *Space) addShape(entry *bodyEntry, shape *cp.Shape, mat physics.Material, filter physics.Filter) physics.ColliderRef {
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Restitution)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(filter.Group), uint(filter.Mask)))
	s.space.AddShape(shape)
	entry.shaped = true
	s.shapes = append(s.shapes, shape)
	return physics.ColliderRef{Handle: s.handle(len(s.shapes) - 1)}
}

// CreatePointConstraint pins localA on bodyA to localB on bodyB. The joined
// bodies never collide with each other.
func (s *Space) CreatePointConstraint(a physics.BodyRef, localA physics.Vector2D, b physics.BodyRef, localB physics.Vector2D) (physics.JointRef, error) {
	ea, err := s.lookupBody(a)
	if err != nil {
		return physics.JointRef{}, err
	}
	eb, err := s.lookupBody(b)
	if err != nil {
		return physics.JointRef{}, err
	}
	if ea == eb {
		return physics.JointRef{}, fmt.Errorf("%w: body %v joined to itself", physics.ErrInvalidHandle, a.Handle)
	}
	joint := cp.NewPivotJoint2(ea.body, eb.body, vec(localA), vec(localB))
	joint.SetCollideBodies(false)
	s.space.AddConstraint(joint)
	s.joints = append(s.joints, joint)
	return physics.JointRef{Handle: s.handle(len(s.joints) - 1)}, nil
}

// ApplyImpulse applies a linear impulse through the centre of mass.
func (s *Space) ApplyImpulse(ref physics.BodyRef, impulse physics.Vector2D) {
	body := s.mustBody(ref)
	body.Activate()
	body.ApplyImpulseAtWorldPoint(vec(impulse), body.LocalToWorld(body.CenterOfGravity()))
}

// ApplyTorque accumulates torque for the next step.
func (s *Space) ApplyTorque(ref physics.BodyRef, torque float64) {
	body := s.mustBody(ref)
	body.Activate()
	body.SetTorque(body.Torque() + torque)
}

// ApplyTorqueImpulse changes angular velocity by impulse / moment.
func (s *Space) ApplyTorqueImpulse(ref physics.BodyRef, impulse float64) {
	body := s.mustBody(ref)
	body.Activate()
	body.SetAngularVelocity(body.AngularVelocity() + impulse/body.Moment())
}

// Transform returns the body's position and rotation.
func (s *Space) Transform(ref physics.BodyRef) physics.Transform {
	body := s.mustBody(ref)
	return physics.Transform{Position: fromVec(body.Position()), Angle: body.Angle()}
}

// Velocity returns the body's linear and angular velocity.
func (s *Space) Velocity(ref physics.BodyRef) (physics.Vector2D, float64) {
	body := s.mustBody(ref)
	return fromVec(body.Velocity()), body.AngularVelocity()
}

// ContactPair looks up the arbiter joining exactly a and b from the last step.
func (s *Space) ContactPair(a, b physics.ColliderRef) (physics.ContactPair, bool) {
	sa, sb := s.mustShape(a), s.mustShape(b)

	// Static bodies do not keep arbiter lists worth walking.
	body := sa.Body()
	if body.GetType() == cp.BODY_STATIC {
		body = sb.Body()
	}

	var (
		pair  physics.ContactPair
		found bool
	)
	body.EachArbiter(func(arb *cp.Arbiter) {
		if found {
			return
		}
		x, y := arb.Shapes()
		if (x == sa && y == sb) || (x == sb && y == sa) {
			found = true
			pair.Points = arb.Count()
			pair.HasActiveContact = pair.Points > 0
		}
	})
	return pair, found
}

// Step sets gravity and advances the space once.
func (s *Space) Step(gravity physics.Vector2D, dt float64) {
	if dt <= 0 {
		return
	}
	s.space.SetGravity(vec(gravity))
	s.space.Step(dt)
}

// BodyCount returns the number of bodies, static ones included.
func (s *Space) BodyCount() int {
	return len(s.bodies)
}

func (s *Space) handle(index int) physics.Handle {
	return physics.Handle{Index: uint32(index), Generation: s.generation}
}

func (s *Space) owns(h physics.Handle, n int) bool {
	return h.Generation == s.generation && int(h.Index) < n
}

func (s *Space) lookupBody(ref physics.BodyRef) (*bodyEntry, error) {
	if !s.owns(ref.Handle, len(s.bodies)) {
		return nil, fmt.Errorf("%w: body %v", physics.ErrInvalidHandle, ref.Handle)
	}
	return s.bodies[ref.Index], nil
}

func (s *Space) mustBody(ref physics.BodyRef) *cp.Body {
	entry, err := s.lookupBody(ref)
	if err != nil {
		panic(err)
	}
	return entry.body
}

func (s *Space) mustShape(ref physics.ColliderRef) *cp.Shape {
	if !s.owns(ref.Handle, len(s.shapes)) {
		panic(fmt.Errorf("%w: collider %v", physics.ErrInvalidHandle, ref.Handle))
	}
	return s.shapes[ref.Index]
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func vec(v physics.Vector2D) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVec(v cp.Vector) physics.Vector2D {
	return physics.Vector2D{X: v.X, Y: v.Y}
}
