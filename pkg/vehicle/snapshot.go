// pkg/vehicle/snapshot.go
package vehicle

import "github.com/opd-ai/go-boink/pkg/physics"

// Snapshot holds the transforms needed to draw a vehicle.
type Snapshot struct {
	Chassis    physics.Transform
	FrontWheel physics.Transform
	BackWheel  physics.Transform
	State      State
}

// Snapshot reads the current part transforms. It does not modify the vehicle.
func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{
		Chassis:    v.engine.Transform(v.parts[ChassisBody].Body()),
		FrontWheel: v.engine.Transform(v.parts[FrontWheel].Body()),
		BackWheel:  v.engine.Transform(v.parts[BackWheel].Body()),
		State:      v.state,
	}
}

// SyncPosition refreshes the cached chassis position from the engine.
func (v *Vehicle) SyncPosition() physics.Vector2D {
	v.position = v.engine.Transform(v.parts[ChassisBody].Body()).Position
	return v.position
}

// Position returns the cached chassis position: the spawn point until the
// first SyncPosition.
func (v *Vehicle) Position() physics.Vector2D {
	return v.position
}
