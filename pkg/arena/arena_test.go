package arena

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/physics/chipmunk"
	"github.com/opd-ai/go-boink/pkg/physics/physicstest"
)

func TestBuild_Layout(t *testing.T) {
	rec := physicstest.NewRecorder()
	a, err := Build(rec, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name   string
		center physics.Vector2D
		width  float64
		height float64
	}{
		{Floor, physics.Vector2D{X: 52.5, Y: 39}, 105, 2},
		{Ceiling, physics.Vector2D{X: 52.5, Y: 1}, 105, 2},
		{WallLeft, physics.Vector2D{X: 1, Y: 20}, 2, 40},
		{WallRight, physics.Vector2D{X: 104, Y: 20}, 2, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := a.Solid(tt.name)
			if !ok {
				t.Fatalf("Solid(%q) missing", tt.name)
			}
			if s.Rect.Center != tt.center || s.Rect.Width != tt.width || s.Rect.Height != tt.height {
				t.Errorf("rect = %+v", s.Rect)
			}
			body := rec.Bodies[s.Body.Index]
			if !body.Static || body.Def.Position != tt.center {
				t.Errorf("body = %+v, want static at %v", body, tt.center)
			}
			c := rec.Colliders[s.Collider.Index]
			if c.HalfExtents != s.Rect.HalfExtents() || c.Filter != SolidFilter {
				t.Errorf("collider = %+v", c)
			}
		})
	}

	if a.Floor() != a.Solids()[0].Collider {
		t.Error("Floor() is not the first solid")
	}
	if _, ok := a.Solid("goal"); ok {
		t.Error("Solid(goal) found")
	}
}

func TestBuild_Ball(t *testing.T) {
	cfg := DefaultConfig()
	rec := physicstest.NewRecorder()
	a, err := Build(rec, cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	ball := a.Ball()
	wantMass := 0.5 * math.Pi * 2.5 * 2.5
	if math.Abs(ball.Mass-wantMass) > 1e-12 {
		t.Errorf("ball mass = %v, want %v", ball.Mass, wantMass)
	}
	body := rec.Bodies[ball.Body.Index]
	if body.Static || body.Def.GravityScale != 0.2 || body.Def.Position != cfg.BallSpawn {
		t.Errorf("ball body = %+v", body.Def)
	}
	c := rec.Colliders[ball.Collider.Index]
	if c.Radius != 2.5 || c.Material.Restitution != 0.7 || c.Filter != BallFilter {
		t.Errorf("ball collider = %+v", c)
	}
}

func TestBallFilter(t *testing.T) {
	chassis := physics.Filter{Group: physics.GroupVehicleBody, Mask: physics.GroupBall | physics.GroupArena}
	wheel := physics.Filter{Group: physics.GroupVehicleWheel, Mask: physics.GroupArena}

	if !BallFilter.Collides(SolidFilter) {
		t.Error("ball does not touch walls")
	}
	if !BallFilter.Collides(chassis) {
		t.Error("ball does not touch the chassis")
	}
	if BallFilter.Collides(wheel) {
		t.Error("ball touches wheels")
	}
	if !SolidFilter.Collides(wheel) {
		t.Error("walls do not touch wheels")
	}
}

func TestBuild_PropagatesEngineErrors(t *testing.T) {
	// 4 solids x 2 calls + ball x 2 calls
	for n := 1; n <= 10; n++ {
		rec := physicstest.NewRecorder()
		rec.FailAfter = n
		a, err := Build(rec, DefaultConfig())
		if a != nil || !errors.Is(err, physicstest.ErrInjected) {
			t.Errorf("FailAfter=%d: Build() = %v, %v", n, a, err)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"default", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.Width = 0 }, "arena.width"},
		{"walls fill arena", func(c *Config) { c.WallThickness = 30 }, "arena.interior"},
		{"spawn in wall", func(c *Config) { c.VehicleSpawn = physics.Vector2D{X: 1, Y: 20} }, "arena.vehicle_spawn"},
		{"ball below floor", func(c *Config) { c.BallSpawn.Y = 39.5 }, "arena.ball_spawn"},
		{"bouncy ball", func(c *Config) { c.Ball.Restitution = 1.5 }, "arena.ball.restitution"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestArena_BallRestsOnFloor(t *testing.T) {
	space := chipmunk.New(chipmunk.Config{})
	a, err := Build(space, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i := 0; i < 60*20; i++ {
		space.Step(physics.Vector2D{Y: 9.81}, 1.0/60)
	}

	pos := space.Transform(a.Ball().Body).Position
	floorTop := DefaultConfig().Height - DefaultConfig().WallThickness
	if !a.Bounds().Contains(pos) {
		t.Fatalf("ball escaped the arena: %v", pos)
	}
	if pos.Y > floorTop {
		t.Errorf("ball sank into the floor: y = %v", pos.Y)
	}
	if _, ok := space.ContactPair(a.Ball().Collider, a.Floor()); !ok {
		t.Error("ball is not touching the floor after 20 s")
	}
}
