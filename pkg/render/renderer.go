// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-boink/pkg/engine"
	"github.com/opd-ai/go-boink/pkg/logging"
)

// Renderer draws session frames. Clear, RenderFrame and Present are
// called in that order once per displayed frame.
type Renderer interface {
	Clear()
	RenderFrame(frame engine.Frame)
	Present()
}

// NullRenderer is a Renderer that only logs at debug level.
type NullRenderer struct {
	logger *logging.Logger
	frames int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger writes to stdout at the BOINK_LOG_LEVEL level.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderFrame implements Renderer.
func (d *NullRenderer) RenderFrame(frame engine.Frame) {
	d.frames++
	chassis := frame.Vehicle.Chassis
	d.logger.Debug(context.Background(), "RenderFrame called",
		"tick", frame.Tick,
		"state", frame.State.String(),
		"vehicle_x", chassis.Position.X,
		"vehicle_y", chassis.Position.Y,
		"vehicle_angle", chassis.Angle,
		"ball_x", frame.Ball.Transform.Position.X,
		"ball_y", frame.Ball.Transform.Position.Y,
	)
}

// Frames returns how many frames were rendered.
func (d *NullRenderer) Frames() int {
	return d.frames
}

var (
	_ Renderer = (*NullRenderer)(nil)
	_ Renderer = (*TerminalRenderer)(nil)
)
