// pkg/vehicle/state.go
package vehicle

import "fmt"

// State is the ground/air classification of a vehicle. The zero value is
// Grounded, which is also the initial state.
type State uint8

const (
	Grounded State = iota
	Airborne
)

// Valid reports whether s is one of the two defined states.
func (s State) Valid() bool {
	return s == Grounded || s == Airborne
}

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
