// pkg/control/script.go
package control

import (
	"fmt"
	"strconv"
	"strings"
)

// Step holds a command set for a number of ticks.
type Step struct {
	Ticks    int
	Commands Commands
}

// Script replays a fixed sequence of steps, one Commands per tick. It
// stands in for a keyboard in headless runs.
type Script struct {
	steps []Step
	loop  bool
	index int
	tick  int
}

// NewScript creates a script. Steps with no ticks are dropped.
func NewScript(loop bool, steps ...Step) *Script {
	kept := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Ticks > 0 {
			kept = append(kept, s)
		}
	}
	return &Script{steps: kept, loop: loop}
}

// Next returns the commands for the next tick. ok is false once a
// non-looping script is exhausted.
func (s *Script) Next() (Commands, bool) {
	if len(s.steps) == 0 {
		return 0, false
	}
	if s.index >= len(s.steps) {
		if !s.loop {
			return 0, false
		}
		s.index = 0
	}
	step := s.steps[s.index]
	s.tick++
	if s.tick >= step.Ticks {
		s.tick = 0
		s.index++
	}
	return step.Commands, true
}

// Len returns the number of ticks in one pass.
func (s *Script) Len() int {
	n := 0
	for _, step := range s.steps {
		n += step.Ticks
	}
	return n
}

// Reset rewinds to the first step.
func (s *Script) Reset() {
	s.index, s.tick = 0, 0
}

// ParseScript reads steps written as "ticks:cmd+cmd", separated by commas,
// e.g. "60:none,120:turn_right,1:jump". Use "none" for an idle step.
func ParseScript(text string, loop bool) (*Script, error) {
	var steps []Step
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		ticksText, cmdText, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("script step %q: missing ':'", field)
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(ticksText))
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("script step %q: invalid tick count", field)
		}
		var cmds Commands
		for _, name := range strings.Split(cmdText, "+") {
			name = strings.TrimSpace(name)
			if name == "none" || name == "" {
				continue
			}
			cmd, ok := ParseCommand(name)
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown command %q", field, name)
			}
			cmds = cmds.With(cmd)
		}
		steps = append(steps, Step{Ticks: ticks, Commands: cmds})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("script is empty")
	}
	return NewScript(loop, steps...), nil
}

// DemoScript drives right, hops, boosts, and rolls in the air, then
// repeats the same moves to the left.
func DemoScript() *Script {
	return NewScript(true,
		Step{Ticks: 60},
		Step{Ticks: 120, Commands: NewCommands(TurnRight)},
		Step{Ticks: 1, Commands: NewCommands(Jump)},
		Step{Ticks: 30, Commands: NewCommands(TurnRight)},
		Step{Ticks: 20, Commands: NewCommands(Boost)},
		Step{Ticks: 60},
		Step{Ticks: 120, Commands: NewCommands(TurnLeft)},
		Step{Ticks: 1, Commands: NewCommands(Jump)},
		Step{Ticks: 30, Commands: NewCommands(TurnLeft, SpinCCW)},
	)
}
