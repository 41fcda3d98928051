// pkg/physics/handle.go
package physics

import "fmt"

// Handle is an index/generation token into storage owned by an Engine.
// The zero Handle is never issued and always invalid.
type Handle struct {
	Index      uint32
	Generation uint32
}

// Valid reports whether h could have been issued by an engine.
func (h Handle) Valid() bool {
	return h.Generation != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Generation)
}

// BodyRef refers to a rigid body.
type BodyRef struct{ Handle }

// ColliderRef refers to a collider attached to a body.
type ColliderRef struct{ Handle }

// JointRef refers to a constraint between two bodies.
type JointRef struct{ Handle }
