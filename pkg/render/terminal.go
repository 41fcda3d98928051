package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/opd-ai/go-boink/pkg/engine"
	"github.com/opd-ai/go-boink/pkg/physics"
)

// Glyphs used by TerminalRenderer.
const (
	GlyphEmpty   = ' '
	GlyphSolid   = '#'
	GlyphBall    = 'O'
	GlyphChassis = '='
	GlyphWheel   = 'o'
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64 // metres per character cell
	centerPos physics.Vector2D
	status    string
	out       io.Writer
}

// NewTerminalRenderer creates a new terminal renderer with the specified dimensions
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
		out:    os.Stdout,
	}
	r.Clear()
	return r
}

// NewArenaTerminalRenderer sizes the scale so bounds fit in width x height
// cells and centres the view on it.
func NewArenaTerminalRenderer(width, height int, bounds physics.Rect) *TerminalRenderer {
	scale := math.Max(bounds.Width/float64(width), bounds.Height/float64(height))
	r := NewTerminalRenderer(width, height, scale)
	r.SetCenter(bounds.Center)
	return r
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// SetOutput redirects Present, which writes to stdout by default.
func (r *TerminalRenderer) SetOutput(w io.Writer) {
	r.out = w
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int(math.Floor((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2))
	screenY := int(math.Floor((pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2))
	return screenX, screenY
}

// screenToWorld returns the world point at the centre of a cell.
func (r *TerminalRenderer) screenToWorld(x, y int) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(x)+0.5-float64(r.width)/2)*r.scale + r.centerPos.X,
		Y: (float64(y)+0.5-float64(r.height)/2)*r.scale + r.centerPos.Y,
	}
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = GlyphEmpty
		}
	}
	r.status = ""
}

// RenderFrame implements Renderer. Walls are drawn first and wheels last.
func (r *TerminalRenderer) RenderFrame(frame engine.Frame) {
	for _, solid := range frame.Solids {
		rect := solid.Rect
		r.fill(rect.Center, rect.Contains, GlyphSolid)
	}

	ball := frame.Ball.Transform.Position
	r.fill(ball, circle(ball, frame.Ball.Radius), GlyphBall)

	v := frame.Vehicle
	r.fill(v.Chassis.Position, orientedBox(v.Chassis, v.HalfExtents), GlyphChassis)
	for _, wheel := range []physics.Transform{v.FrontWheel, v.BackWheel} {
		r.fill(wheel.Position, circle(wheel.Position, v.WheelRadius), GlyphWheel)
	}

	r.status = fmt.Sprintf("tick %d  t=%.2fs  %s  ball (%.1f, %.1f)",
		frame.Tick, frame.Time, frame.State, ball.X, ball.Y)
}

// fill marks every cell whose centre satisfies inside, and always the
// cell under anchor so small shapes stay visible.
func (r *TerminalRenderer) fill(anchor physics.Vector2D, inside func(physics.Vector2D) bool, glyph rune) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if inside(r.screenToWorld(x, y)) {
				r.buffer[y][x] = glyph
			}
		}
	}
	r.plot(anchor, glyph)
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	w := bufio.NewWriter(r.out)
	defer w.Flush()

	// Clear terminal
	fmt.Fprint(w, "\033[H\033[2J")

	border := "+" + strings.Repeat("-", r.width) + "+"
	fmt.Fprintln(w, border)
	for y := range r.buffer {
		fmt.Fprintf(w, "|%s|\n", string(r.buffer[y]))
	}
	fmt.Fprintln(w, border)

	if r.status != "" {
		fmt.Fprintln(w, r.status)
	}
}

// Row returns one line of the buffer, for tests and debugging.
func (r *TerminalRenderer) Row(y int) string {
	return string(r.buffer[y])
}

// Status returns the text printed under the arena.
func (r *TerminalRenderer) Status() string {
	return r.status
}

func circle(center physics.Vector2D, radius float64) func(physics.Vector2D) bool {
	return func(p physics.Vector2D) bool {
		return p.Distance(center) <= radius
	}
}

func orientedBox(t physics.Transform, half physics.Vector2D) func(physics.Vector2D) bool {
	return func(p physics.Vector2D) bool {
		local := p.Sub(t.Position).Rotate(-t.Angle)
		return math.Abs(local.X) <= half.X && math.Abs(local.Y) <= half.Y
	}
}
