// pkg/engine/frame.go
package engine

import (
	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// Frame represents a snapshot of everything a renderer draws
type Frame struct {
	Tick    uint64
	Time    float64 // simulated seconds
	Status  Status
	State   vehicle.State
	Vehicle VehicleFrame
	Ball    BallFrame
	Solids  []SolidFrame
	Bounds  physics.Rect
	// Alpha is the unspent fraction of a fixed step, in [0, 1).
	Alpha float64
}

// VehicleFrame carries the part transforms and their dimensions
type VehicleFrame struct {
	vehicle.Snapshot
	HalfExtents physics.Vector2D
	WheelRadius float64
}

// BallFrame represents a snapshot of the ball
type BallFrame struct {
	Transform physics.Transform
	Velocity  physics.Vector2D
	Radius    float64
}

// SolidFrame represents one static wall
type SolidFrame struct {
	Name string
	Rect physics.Rect
}

// Frame builds the presentation snapshot. It only reads state.
func (s *Session) Frame() Frame {
	snap := s.Vehicle.Snapshot()
	vcfg := s.Vehicle.Config()
	ball := s.Arena.Ball()
	ballVel, _ := s.Engine.Velocity(ball.Body)

	solids := make([]SolidFrame, len(s.solids))
	copy(solids, s.solids)

	return Frame{
		Tick:   s.CurrentTick,
		Time:   s.ElapsedTime,
		Status: s.Status,
		State:  snap.State,
		Vehicle: VehicleFrame{
			Snapshot:    snap,
			HalfExtents: physics.Vector2D{X: vcfg.HalfLength, Y: vcfg.HalfHeight},
			WheelRadius: vcfg.WheelRadius,
		},
		Ball: BallFrame{
			Transform: s.Engine.Transform(ball.Body),
			Velocity:  ballVel,
			Radius:    ball.Radius,
		},
		Solids: solids,
		Bounds: s.Arena.Bounds(),
		Alpha:  s.alpha(),
	}
}

func (s *Session) alpha() float64 {
	step := s.Config.Physics.FixedStep
	if step <= 0 {
		return 0
	}
	a := s.accumulator / step
	if a >= 1 {
		return 0
	}
	return a
}
