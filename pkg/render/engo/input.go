// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-boink/pkg/control"
)

// Button names registered by SetupInputBindings.
const (
	ButtonTurnLeft  = "turnLeft"
	ButtonTurnRight = "turnRight"
	ButtonJump      = "jump"
	ButtonBoost     = "boost"
	ButtonSpinCCW   = "spinCCW"
	ButtonSpinCW    = "spinCW"
	ButtonQuit      = "quit"
)

var bindings = []struct {
	button string
	cmd    control.Command
}{
	{ButtonTurnLeft, control.TurnLeft},
	{ButtonTurnRight, control.TurnRight},
	{ButtonJump, control.Jump},
	{ButtonBoost, control.Boost},
	{ButtonSpinCCW, control.SpinCCW},
	{ButtonSpinCW, control.SpinCW},
}

// Buttons reports held buttons by name.
type Buttons interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// engoButtons reads the global engo input state.
type engoButtons struct{}

func (engoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

func (engoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

// InputSystem turns held keys into control commands each frame
type InputSystem struct {
	buttons  Buttons
	onQuit   func()
	commands control.Commands
}

// NewInputSystem creates a new input system. onQuit runs when the quit
// button is pressed; nil means engo.Exit.
func NewInputSystem(buttons Buttons, onQuit func()) *InputSystem {
	if buttons == nil {
		buttons = engoButtons{}
	}
	if onQuit == nil {
		onQuit = engo.Exit
	}
	return &InputSystem{buttons: buttons, onQuit: onQuit}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update samples the buttons.
func (is *InputSystem) Update(dt float32) {
	var cmds control.Commands
	for _, b := range bindings {
		if is.buttons.Down(b.button) {
			cmds = cmds.With(b.cmd)
		}
	}
	is.commands = cmds

	if is.buttons.JustPressed(ButtonQuit) {
		is.onQuit()
	}
}

// Commands returns the commands sampled by the last Update.
func (is *InputSystem) Commands() control.Commands {
	return is.commands
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonTurnLeft, engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton(ButtonTurnRight, engo.KeyArrowRight, engo.KeyD)
	engo.Input.RegisterButton(ButtonJump, engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton(ButtonBoost, engo.KeySpace, engo.KeyLeftShift)
	engo.Input.RegisterButton(ButtonSpinCCW, engo.KeyQ)
	engo.Input.RegisterButton(ButtonSpinCW, engo.KeyE)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
