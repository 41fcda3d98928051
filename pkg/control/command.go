// Package control maps player commands onto vehicle operations once per
// physics tick.
package control

import "strings"

// Command is one input in the control vocabulary.
type Command uint8

const (
	TurnLeft Command = 1 << iota
	TurnRight
	Jump
	Boost
	SpinCCW
	SpinCW
)

var commandNames = []struct {
	cmd  Command
	name string
}{
	{TurnLeft, "turn_left"},
	{TurnRight, "turn_right"},
	{Jump, "jump"},
	{Boost, "boost"},
	{SpinCCW, "spin_ccw"},
	{SpinCW, "spin_cw"},
}

// Commands is the set of commands held during one tick.
type Commands uint8

// NewCommands returns a set holding cmds.
func NewCommands(cmds ...Command) Commands {
	var c Commands
	for _, cmd := range cmds {
		c = c.With(cmd)
	}
	return c
}

// Has reports whether cmd is held.
func (c Commands) Has(cmd Command) bool {
	return c&Commands(cmd) != 0
}

// With returns c plus cmd.
func (c Commands) With(cmd Command) Commands {
	return c | Commands(cmd)
}

// Without returns c minus cmd.
func (c Commands) Without(cmd Command) Commands {
	return c &^ Commands(cmd)
}

// Empty reports whether nothing is held.
func (c Commands) Empty() bool {
	return c == 0
}

func (c Commands) String() string {
	if c.Empty() {
		return "none"
	}
	var names []string
	for _, n := range commandNames {
		if c.Has(n.cmd) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}

// ParseCommand resolves a command name as printed by Commands.String.
func ParseCommand(name string) (Command, bool) {
	for _, n := range commandNames {
		if n.name == name {
			return n.cmd, true
		}
	}
	return 0, false
}

// turn returns -1, 0 or +1 for the held turn direction. Left and right
// together cancel.
func (c Commands) turn() float64 {
	var dir float64
	if c.Has(TurnRight) {
		dir++
	}
	if c.Has(TurnLeft) {
		dir--
	}
	return dir
}

func (c Commands) spin() float64 {
	var dir float64
	if c.Has(SpinCW) {
		dir++
	}
	if c.Has(SpinCCW) {
		dir--
	}
	return dir
}
