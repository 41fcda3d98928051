package control

import (
	"strings"
	"testing"
)

func drain(s *Script, n int) []Commands {
	var out []Commands
	for i := 0; i < n; i++ {
		c, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}

func TestScript_Next(t *testing.T) {
	s := NewScript(false,
		Step{Ticks: 2, Commands: NewCommands(TurnRight)},
		Step{Ticks: 0, Commands: NewCommands(Boost)},
		Step{Ticks: 1, Commands: NewCommands(Jump)},
	)

	got := drain(s, 10)
	want := []Commands{NewCommands(TurnRight), NewCommands(TurnRight), NewCommands(Jump)}
	if len(got) != len(want) {
		t.Fatalf("Next() produced %d ticks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestScript_Loop(t *testing.T) {
	s := NewScript(true, Step{Ticks: 1, Commands: NewCommands(Jump)}, Step{Ticks: 1})
	got := drain(s, 5)
	if len(got) != 5 {
		t.Fatalf("looping script stopped after %d ticks", len(got))
	}
	for i, c := range got {
		if want := i%2 == 0; c.Has(Jump) != want {
			t.Errorf("tick %d = %v", i, c)
		}
	}

	s.Reset()
	if c, _ := s.Next(); !c.Has(Jump) {
		t.Error("Reset() did not rewind")
	}
}

func TestScript_Empty(t *testing.T) {
	if _, ok := NewScript(true).Next(); ok {
		t.Error("empty script produced a tick")
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("2:none, 1:turn_right+boost,1:jump", false)
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	got := drain(s, 10)
	want := []Commands{0, 0, NewCommands(TurnRight, Boost), NewCommands(Jump)}
	if len(got) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "empty"},
		{"10", "missing ':'"},
		{"x:jump", "invalid tick count"},
		{"0:jump", "invalid tick count"},
		{"5:fly", "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseScript(tt.text, false)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseScript(%q) error = %v, want %q", tt.text, err, tt.want)
			}
		})
	}
}

func TestDemoScript(t *testing.T) {
	s := DemoScript()
	if s.Len() == 0 {
		t.Fatal("DemoScript() is empty")
	}
	if got := drain(s, s.Len()+1); len(got) != s.Len()+1 {
		t.Error("DemoScript() does not loop")
	}
}
