package vehicle

import (
	"math"
	"testing"

	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/physics/physicstest"
)

func TestVehicle_Drive(t *testing.T) {
	v, rec := newRecordedVehicle(t, physics.Vector2D{})

	v.Drive(500)

	calls := rec.CallsOf(physicstest.CallTorque)
	if len(calls) != 2 {
		t.Fatalf("Drive() issued %d torque calls, want 2", len(calls))
	}
	bodies := map[physics.BodyRef]bool{}
	for _, c := range calls {
		if c.Scalar != 500 {
			t.Errorf("torque = %v, want 500", c.Scalar)
		}
		bodies[c.Body] = true
	}
	if !bodies[v.Part(FrontWheel).Body()] || !bodies[v.Part(BackWheel).Body()] {
		t.Errorf("Drive() torqued %v, want both wheels", bodies)
	}
	if len(rec.Calls) != 2 {
		t.Errorf("Drive() issued %d calls in total", len(rec.Calls))
	}
}

func TestVehicle_Spin(t *testing.T) {
	v, rec := newRecordedVehicle(t, physics.Vector2D{})

	v.Spin(-1)

	calls := rec.CallsOf(physicstest.CallTorqueImpulse)
	if len(calls) != 1 {
		t.Fatalf("Spin() issued %d torque impulses, want 1", len(calls))
	}
	if calls[0].Body != v.Part(ChassisBody).Body() || calls[0].Scalar != -1 {
		t.Errorf("Spin() call = %+v", calls[0])
	}
}

func TestVehicle_JumpWhenGrounded(t *testing.T) {
	v, rec := newRecordedVehicle(t, physics.Vector2D{})

	if !v.Jump() {
		t.Fatal("Jump() = false while grounded")
	}

	calls := rec.CallsOf(physicstest.CallImpulse)
	if len(calls) != 1 {
		t.Fatalf("Jump() issued %d impulses, want 1", len(calls))
	}
	want := physics.Vector2D{X: 0, Y: -DefaultConfig().JumpImpulse}
	if calls[0].Vector != want {
		t.Errorf("jump impulse = %v, want %v", calls[0].Vector, want)
	}
	if calls[0].Body != v.Part(ChassisBody).Body() {
		t.Errorf("jump applied to %v, want chassis", calls[0].Body)
	}
	if v.State() != Grounded {
		t.Errorf("Jump() changed state to %v", v.State())
	}
}

func TestVehicle_JumpWhenAirborne(t *testing.T) {
	v, rec := newRecordedVehicle(t, physics.Vector2D{})
	v.SetState(Airborne)

	for i := 0; i < 30; i++ {
		if v.Jump() {
			t.Fatalf("Jump() = true while airborne on attempt %d", i)
		}
	}
	if len(rec.Calls) != 0 {
		t.Errorf("airborne Jump() issued %d engine calls", len(rec.Calls))
	}
}

func TestForwardAxis(t *testing.T) {
	const eps = 1e-9
	deg := math.Pi / 180

	tests := []struct {
		name    string
		angle   float64
		flipped bool
	}{
		{"level", 0, false},
		{"just inside +90", 89.9 * deg, false},
		{"just outside +90", 90.1 * deg, true},
		{"just inside -90", -89.9 * deg, false},
		{"just outside -90", -90.1 * deg, true},
		{"upside down", math.Pi, true},
		{"full turn plus a bit", 2*math.Pi + 10*deg, false},
		{"one and a half turns", 3 * math.Pi, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nominal := physics.FromAngle(tt.angle, 1)
			want := nominal
			if tt.flipped {
				want = nominal.Neg()
			}
			got := ForwardAxis(tt.angle)
			if !got.ApproxEqual(want, eps) {
				t.Errorf("ForwardAxis(%v) = %v, want %v", tt.angle, got, want)
			}
			if math.Abs(got.Length()-1) > eps {
				t.Errorf("ForwardAxis(%v) length = %v", tt.angle, got.Length())
			}
		})
	}
}

func TestVehicle_Boost(t *testing.T) {
	const force = 10.0
	deg := math.Pi / 180

	tests := []struct {
		name  string
		angle float64
		sign  float64
	}{
		{"within quarter turn", 89 * deg, 1},
		{"past quarter turn", 91 * deg, -1},
		{"within negative quarter turn", -89 * deg, 1},
		{"past negative quarter turn", -91 * deg, -1},
	}

	for _, state := range []State{Grounded, Airborne} {
		for _, tt := range tests {
			t.Run(state.String()+"/"+tt.name, func(t *testing.T) {
				v, rec := newRecordedVehicle(t, physics.Vector2D{})
				v.SetState(state)
				chassis := v.Part(ChassisBody).Body()
				rec.SetTransform(chassis, physics.Transform{Angle: tt.angle})

				got := v.Boost(force)

				want := physics.FromAngle(tt.angle, force*tt.sign)
				if !got.ApproxEqual(want, 1e-9) {
					t.Errorf("Boost() = %v, want %v", got, want)
				}
				calls := rec.CallsOf(physicstest.CallImpulse)
				if len(calls) != 1 || calls[0].Body != chassis {
					t.Fatalf("Boost() calls = %+v, want one chassis impulse", calls)
				}
				if !calls[0].Vector.ApproxEqual(want, 1e-9) {
					t.Errorf("applied impulse = %v, want %v", calls[0].Vector, want)
				}
			})
		}
	}
}

func TestVehicle_ControlPanicsOnForeignHandles(t *testing.T) {
	v, _ := newRecordedVehicle(t, physics.Vector2D{})
	// Rebind to an engine that never issued the vehicle's handles.
	v.engine = physicstest.NewRecorder()

	defer func() {
		if recover() == nil {
			t.Error("Drive() on unknown bodies did not panic")
		}
	}()
	v.Drive(1)
}
