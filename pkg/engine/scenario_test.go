package engine

import (
	"testing"

	"github.com/opd-ai/go-boink/pkg/control"
	"github.com/opd-ai/go-boink/pkg/event"
	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// settle ticks until the vehicle is grounded or the limit is reached.
func settle(s *Session, limit int) bool {
	for i := 0; i < limit; i++ {
		s.Tick(control.Commands(0))
		if s.Vehicle.State() == vehicle.Grounded && s.CurrentTick > 1 {
			return true
		}
	}
	return false
}

func TestScenario_VehicleLandsThenJumps(t *testing.T) {
	s, err := NewChipmunkSession(nil, testOptions(t)...)
	if err != nil {
		t.Fatalf("NewChipmunkSession: %v", err)
	}
	got := collect(s.EventBus, event.VehicleStateChanged, event.VehicleJumped)

	if !settle(s, 1200) {
		t.Fatalf("vehicle never landed; state %v after %d ticks", s.Vehicle.State(), s.CurrentTick)
	}

	spawn := s.Config.Arena.VehicleSpawn
	if pos := s.Vehicle.Position(); pos.Y <= spawn.Y {
		t.Errorf("expected the vehicle to fall from %v, at %v", spawn, pos)
	}

	jump := control.NewCommands(control.Jump)
	airborne := false
	for i := 0; i < 60 && !airborne; i++ {
		s.Tick(jump)
		airborne = s.Vehicle.State() == vehicle.Airborne
	}
	if !airborne {
		t.Fatal("vehicle did not leave the ground after jumping")
	}

	var jumps, landings, takeoffs int
	for _, e := range *got {
		switch ev := e.(type) {
		case *event.ActionEvent:
			jumps++
		case *event.StateEvent:
			if ev.To == vehicle.Grounded {
				landings++
			} else {
				takeoffs++
			}
		}
	}
	if jumps != 1 {
		t.Errorf("expected exactly one jump while held, got %d", jumps)
	}
	if landings < 1 || takeoffs < 2 {
		t.Errorf("expected at least one landing and two takeoffs, got %d and %d", landings, takeoffs)
	}
}

func TestScenario_DriveMovesVehicleRight(t *testing.T) {
	s, err := NewChipmunkSession(nil, testOptions(t)...)
	if err != nil {
		t.Fatalf("NewChipmunkSession: %v", err)
	}
	if !settle(s, 1200) {
		t.Fatalf("vehicle never landed")
	}

	start := s.Vehicle.Position()
	right := control.NewCommands(control.TurnRight)
	for i := 0; i < 120; i++ {
		s.Tick(right)
	}

	if dx := s.Vehicle.Position().X - start.X; dx <= 0.5 {
		t.Errorf("expected the vehicle to drive right, moved %f", dx)
	}
}

func TestScenario_AdvanceMatchesTicks(t *testing.T) {
	s, err := NewChipmunkSession(nil, testOptions(t)...)
	if err != nil {
		t.Fatalf("NewChipmunkSession: %v", err)
	}
	s.Start()

	total := 0
	for i := 0; i < 60; i++ {
		total += s.Advance(1.0/60.0, control.Commands(0))
	}
	if uint64(total) != s.CurrentTick {
		t.Errorf("Advance reported %d ticks, session counted %d", total, s.CurrentTick)
	}
	if total < 119 || total > 120 {
		t.Errorf("expected about 120 ticks for one second, got %d", total)
	}
}
