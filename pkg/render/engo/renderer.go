// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-boink/pkg/engine"
	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/render"
)

// Draw order, back to front.
const (
	zSolid float32 = iota
	zBall
	zChassis
	zWheel
)

// RenderSink receives drawable entities. *common.RenderSystem is one.
type RenderSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// shape is one flat-coloured drawable.
type shape struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements render.Renderer with engo shape entities. The
// entities are created on the first frame and moved on later ones.
type EngoRenderer struct {
	sink     RenderSink
	viewport Viewport
	palette  Palette

	solids  []*shape
	ball    *shape
	chassis *shape
	wheels  [2]*shape
}

var _ render.Renderer = (*EngoRenderer)(nil)

// NewEngoRenderer creates a new engo-based renderer
func NewEngoRenderer(sink RenderSink, viewport Viewport, palette Palette) *EngoRenderer {
	return &EngoRenderer{
		sink:     sink,
		viewport: viewport,
		palette:  palette,
	}
}

// SetViewport replaces the world to screen mapping, e.g. after a resize.
func (r *EngoRenderer) SetViewport(v Viewport) {
	r.viewport = v
}

// Clear implements render.Renderer. engo clears the screen itself.
func (r *EngoRenderer) Clear() {}

// Present implements render.Renderer. engo presents through its render system.
func (r *EngoRenderer) Present() {}

// RenderFrame implements render.Renderer
func (r *EngoRenderer) RenderFrame(frame engine.Frame) {
	if r.ball == nil {
		r.build(frame)
	}

	for i, solid := range frame.Solids {
		if i < len(r.solids) {
			r.place(r.solids[i], solid.Rect.Center, solid.Rect.Width, solid.Rect.Height, 0)
		}
	}

	d := 2 * frame.Ball.Radius
	r.place(r.ball, frame.Ball.Transform.Position, d, d, 0)

	v := frame.Vehicle
	r.place(r.chassis, v.Chassis.Position, 2*v.HalfExtents.X, 2*v.HalfExtents.Y, v.Chassis.Angle)
	r.chassis.Color = r.palette.Chassis(frame.State)

	wd := 2 * v.WheelRadius
	r.place(r.wheels[0], v.FrontWheel.Position, wd, wd, 0)
	r.place(r.wheels[1], v.BackWheel.Position, wd, wd, 0)
}

func (r *EngoRenderer) build(frame engine.Frame) {
	for range frame.Solids {
		r.solids = append(r.solids, r.newShape(common.Rectangle{}, r.palette.Solid, zSolid))
	}
	r.ball = r.newShape(common.Circle{}, r.palette.Ball, zBall)
	r.chassis = r.newShape(common.Rectangle{}, r.palette.Chassis(frame.State), zChassis)
	for i := range r.wheels {
		r.wheels[i] = r.newShape(common.Circle{}, r.palette.Wheel, zWheel)
	}
}

func (r *EngoRenderer) newShape(drawable common.Drawable, c color.Color, z float32) *shape {
	s := &shape{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{Drawable: drawable, Color: c}
	s.RenderComponent.SetZIndex(z)
	r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// place sizes s to w x h metres and sets its top-left corner so the
// rectangle, rotated by angle about that corner, is centred on center.
func (r *EngoRenderer) place(s *shape, center physics.Vector2D, w, h, angle float64) {
	s.Width = r.viewport.Length(w)
	s.Height = r.viewport.Length(h)
	s.Rotation = float32(angle * 180 / math.Pi)

	c := r.viewport.ToScreen(center)
	sin, cos := math.Sincos(angle)
	hx, hy := float64(s.Width)/2, float64(s.Height)/2
	s.Position = engo.Point{
		X: c.X - float32(hx*cos-hy*sin),
		Y: c.Y - float32(hx*sin+hy*cos),
	}
}

// Close removes every entity from the sink.
func (r *EngoRenderer) Close() {
	for _, s := range r.all() {
		r.sink.Remove(s.BasicEntity)
	}
	r.solids = nil
	r.ball, r.chassis = nil, nil
	r.wheels = [2]*shape{}
}

func (r *EngoRenderer) all() []*shape {
	if r.ball == nil {
		return nil
	}
	out := append([]*shape{}, r.solids...)
	return append(out, r.ball, r.chassis, r.wheels[0], r.wheels[1])
}
