// pkg/vehicle/part.go
package vehicle

import "github.com/opd-ai/go-boink/pkg/physics"

// Role identifies one of the fixed parts of a vehicle rig.
type Role uint8

const (
	ChassisBody Role = iota
	FrontWheel
	BackWheel
	numRoles
)

// Roles lists every role in construction order.
var Roles = [numRoles]Role{ChassisBody, FrontWheel, BackWheel}

func (r Role) String() string {
	switch r {
	case ChassisBody:
		return "chassis"
	case FrontWheel:
		return "front_wheel"
	case BackWheel:
		return "back_wheel"
	default:
		return "unknown"
	}
}

// PartKind tells the two part variants apart.
type PartKind uint8

const (
	KindBody PartKind = iota
	KindWheel
)

// Part is a rigid body of the rig plus its single collider. The set of
// implementations is closed: *BodyPart and *WheelPart.
type Part interface {
	Kind() PartKind
	Body() physics.BodyRef
	Collider() physics.ColliderRef
	sealed()
}

type rigPart struct {
	body     physics.BodyRef
	collider physics.ColliderRef
}

func (p *rigPart) Body() physics.BodyRef         { return p.body }
func (p *rigPart) Collider() physics.ColliderRef { return p.collider }
func (p *rigPart) sealed()                       {}

// BodyPart is the chassis hull, a box.
type BodyPart struct {
	rigPart
	HalfExtents physics.Vector2D
}

// Kind implements Part.
func (*BodyPart) Kind() PartKind { return KindBody }

// WheelPart is a circular wheel pinned to the chassis.
type WheelPart struct {
	rigPart
	Radius float64
}

// Kind implements Part.
func (*WheelPart) Kind() PartKind { return KindWheel }
