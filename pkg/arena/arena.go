// Package arena builds the static walls and the ball the vehicle plays with.
package arena

import (
	"math"

	"github.com/opd-ai/go-boink/pkg/logging"
	"github.com/opd-ai/go-boink/pkg/physics"
)

// Collision filters for arena objects. Walls touch everything; the ball
// touches walls, other balls and the chassis, never wheels.
var (
	SolidFilter = physics.Filter{
		Group: physics.GroupArena,
		Mask:  physics.GroupAll,
	}
	BallFilter = physics.Filter{
		Group: physics.GroupBall,
		Mask:  physics.GroupBall | physics.GroupVehicleBody | physics.GroupArena,
	}
)

// Solid names.
const (
	Floor     = "floor"
	Ceiling   = "ceiling"
	WallLeft  = "wall_left"
	WallRight = "wall_right"
)

// Solid is one static wall.
type Solid struct {
	Name     string
	Rect     physics.Rect
	Body     physics.BodyRef
	Collider physics.ColliderRef
}

// Ball is the dynamic ball.
type Ball struct {
	Radius   float64
	Mass     float64
	Body     physics.BodyRef
	Collider physics.ColliderRef
}

// Arena holds references to everything Build created.
type Arena struct {
	cfg    Config
	solids []Solid
	ball   Ball
}

// Build creates floor, ceiling, left and right walls, then the ball.
// Walls are laid out from their top-left corners inside Width x Height.
func Build(b physics.Builder, cfg Config) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid arena config")
	}

	a := &Arena{cfg: cfg}
	t := cfg.WallThickness
	layout := []struct {
		name string
		rect physics.Rect
	}{
		{Floor, physics.RectFromCorner(physics.Vector2D{X: 0, Y: cfg.Height - t}, cfg.Width, t)},
		{Ceiling, physics.RectFromCorner(physics.Vector2D{X: 0, Y: 0}, cfg.Width, t)},
		{WallLeft, physics.RectFromCorner(physics.Vector2D{X: 0, Y: 0}, t, cfg.Height)},
		{WallRight, physics.RectFromCorner(physics.Vector2D{X: cfg.Width - t, Y: 0}, t, cfg.Height)},
	}
	for _, l := range layout {
		solid, err := buildSolid(b, l.name, l.rect, physics.Material{Friction: cfg.Friction, Restitution: cfg.Restitution})
		if err != nil {
			return nil, err
		}
		a.solids = append(a.solids, solid)
	}

	ball, err := buildBall(b, cfg.BallSpawn, cfg.Ball)
	if err != nil {
		return nil, err
	}
	a.ball = ball
	return a, nil
}

func buildSolid(b physics.Builder, name string, rect physics.Rect, mat physics.Material) (Solid, error) {
	body, err := b.CreateStaticBody(rect.Center)
	if err != nil {
		return Solid{}, logging.WrapError(err, "create %s body", name)
	}
	collider, err := b.AttachBoxCollider(body, rect.HalfExtents(), mat, SolidFilter)
	if err != nil {
		return Solid{}, logging.WrapError(err, "attach %s collider", name)
	}
	return Solid{Name: name, Rect: rect, Body: body, Collider: collider}, nil
}

func buildBall(b physics.Builder, spawn physics.Vector2D, cfg BallConfig) (Ball, error) {
	mass := cfg.Density * math.Pi * cfg.Radius * cfg.Radius
	body, err := b.CreateDynamicBody(physics.BodyDef{
		Position:       spawn,
		LinearDamping:  cfg.LinearDamping,
		AngularDamping: cfg.AngularDamping,
		Mass:           mass,
		GravityScale:   cfg.GravityScale,
	})
	if err != nil {
		return Ball{}, logging.WrapError(err, "create ball body")
	}
	collider, err := b.AttachCircleCollider(body, cfg.Radius, physics.Material{
		Friction:    cfg.Friction,
		Restitution: cfg.Restitution,
	}, BallFilter)
	if err != nil {
		return Ball{}, logging.WrapError(err, "attach ball collider")
	}
	return Ball{Radius: cfg.Radius, Mass: mass, Body: body, Collider: collider}, nil
}

// Floor returns the collider the vehicle classifier treats as ground.
func (a *Arena) Floor() physics.ColliderRef {
	return a.solids[0].Collider
}

// Solids returns the walls in build order, floor first.
func (a *Arena) Solids() []Solid {
	return a.solids
}

// Solid returns the wall with the given name.
func (a *Arena) Solid(name string) (Solid, bool) {
	for _, s := range a.solids {
		if s.Name == name {
			return s, true
		}
	}
	return Solid{}, false
}

// Ball returns the ball.
func (a *Arena) Ball() Ball {
	return a.ball
}

// VehicleSpawn returns where the vehicle starts.
func (a *Arena) VehicleSpawn() physics.Vector2D {
	return a.cfg.VehicleSpawn
}

// Bounds is the full pitch rectangle, walls included.
func (a *Arena) Bounds() physics.Rect {
	return physics.RectFromCorner(physics.Vector2D{}, a.cfg.Width, a.cfg.Height)
}

// Config returns the configuration the arena was built from.
func (a *Arena) Config() Config {
	return a.cfg
}
