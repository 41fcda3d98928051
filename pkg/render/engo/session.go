// pkg/render/engo/session.go
package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-boink/pkg/control"
	"github.com/opd-ai/go-boink/pkg/engine"
	"github.com/opd-ai/go-boink/pkg/render"
)

// CommandSource supplies the commands held this frame.
type CommandSource interface {
	Commands() control.Commands
}

// SessionSystem advances the session by each engo frame's delta and
// redraws it.
type SessionSystem struct {
	session  *engine.Session
	input    CommandSource
	renderer render.Renderer
	ticks    int
}

// NewSessionSystem creates a new session system
func NewSessionSystem(session *engine.Session, input CommandSource, renderer render.Renderer) *SessionSystem {
	return &SessionSystem{
		session:  session,
		input:    input,
		renderer: renderer,
	}
}

// Remove satisfies the ecs.System interface
func (ss *SessionSystem) Remove(basic ecs.BasicEntity) {}

// Update steps the simulation, then draws the resulting frame.
func (ss *SessionSystem) Update(dt float32) {
	ss.ticks += ss.session.Advance(float64(dt), ss.input.Commands())

	ss.renderer.Clear()
	ss.renderer.RenderFrame(ss.session.Frame())
	ss.renderer.Present()
}

// Ticks returns the simulation ticks taken across all updates.
func (ss *SessionSystem) Ticks() int {
	return ss.ticks
}
