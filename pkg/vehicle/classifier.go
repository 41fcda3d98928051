// pkg/vehicle/classifier.go
package vehicle

import "github.com/opd-ai/go-boink/pkg/physics"

// Classify reports Grounded only when both wheels have an active contact
// with ground. A single wheel down counts as Airborne. It only reads q.
func Classify(v *Vehicle, ground physics.ColliderRef, q physics.ContactQuery) State {
	for _, role := range [...]Role{FrontWheel, BackWheel} {
		pair, ok := q.ContactPair(v.parts[role].Collider(), ground)
		if !ok || !pair.HasActiveContact {
			return Airborne
		}
	}
	return Grounded
}

// State returns the last classification written with SetState.
func (v *Vehicle) State() State {
	return v.state
}

// SetState records a classification and reports whether it changed.
// It panics on a value that is not a defined State.
func (v *Vehicle) SetState(s State) bool {
	if !s.Valid() {
		panic("vehicle: invalid state " + s.String())
	}
	changed := v.state != s
	v.state = s
	return changed
}
