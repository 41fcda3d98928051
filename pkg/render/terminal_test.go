package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-boink/pkg/physics"
)

// TestNewTerminalRenderer tests the creation of a new terminal renderer
func TestNewTerminalRenderer_CreatesValidRenderer_WithCorrectDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		scale  float64
	}{
		{"small renderer", 10, 5, 1.0},
		{"medium renderer", 80, 24, 10.0},
		{"large renderer", 120, 40, 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewTerminalRenderer(tt.width, tt.height, tt.scale)

			if renderer == nil {
				t.Fatal("NewTerminalRenderer returned nil")
			}

			if renderer.width != tt.width || renderer.height != tt.height {
				t.Errorf("expected %dx%d, got %dx%d", tt.width, tt.height, renderer.width, renderer.height)
			}

			if renderer.scale != tt.scale {
				t.Errorf("expected scale %f, got %f", tt.scale, renderer.scale)
			}

			if len(renderer.buffer) != tt.height {
				t.Errorf("expected buffer height %d, got %d", tt.height, len(renderer.buffer))
			}

			for i, row := range renderer.buffer {
				if len(row) != tt.width {
					t.Errorf("row %d: expected width %d, got %d", i, tt.width, len(row))
				}
				if strings.TrimSpace(string(row)) != "" {
					t.Errorf("row %d: expected blank, got %q", i, string(row))
				}
			}
		})
	}
}

func TestNewArenaTerminalRenderer_FitsBounds(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		bounds    physics.Rect
		wantScale float64
	}{
		{"one metre per cell", 105, 40, physics.RectFromCorner(physics.Vector2D{}, 105, 40), 1},
		{"width limited", 50, 40, physics.RectFromCorner(physics.Vector2D{}, 100, 40), 2},
		{"height limited", 100, 10, physics.RectFromCorner(physics.Vector2D{}, 100, 40), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewArenaTerminalRenderer(tt.width, tt.height, tt.bounds)
			if r.scale != tt.wantScale {
				t.Errorf("scale = %f, want %f", r.scale, tt.wantScale)
			}
			if r.centerPos != tt.bounds.Center {
				t.Errorf("center = %v, want %v", r.centerPos, tt.bounds.Center)
			}
		})
	}
}

func TestWorldToScreen_ConvertsCoordinates(t *testing.T) {
	r := NewTerminalRenderer(80, 24, 2.0)
	r.SetCenter(physics.Vector2D{X: 100, Y: 50})

	tests := []struct {
		name  string
		world physics.Vector2D
		wantX int
		wantY int
	}{
		{"center", physics.Vector2D{X: 100, Y: 50}, 40, 12},
		{"right and down", physics.Vector2D{X: 110, Y: 60}, 45, 17},
		{"just left of the view", physics.Vector2D{X: 19, Y: 50}, -1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.worldToScreen(tt.world)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("worldToScreen(%v) = (%d, %d), want (%d, %d)", tt.world, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTerminalRenderer_RenderFrame_DrawsArena(t *testing.T) {
	frame := testFrame()
	r := NewArenaTerminalRenderer(105, 40, frame.Bounds)

	r.Clear()
	r.RenderFrame(frame)

	if row := r.Row(39); row != strings.Repeat(string(GlyphSolid), 105) {
		t.Errorf("floor row = %q, want all walls", row)
	}
	if row := r.Row(20); row[0] != GlyphSolid || row[104] != GlyphSolid {
		t.Errorf("side walls missing from row 20: %q", row)
	}
	if got := rune(r.Row(20)[52]); got != GlyphBall {
		t.Errorf("ball cell = %q, want %q", got, GlyphBall)
	}
	if got := rune(r.Row(30)[10]); got != GlyphChassis {
		t.Errorf("chassis cell = %q, want %q", got, GlyphChassis)
	}
	if got := rune(r.Row(30)[11]); got != GlyphWheel {
		t.Errorf("front wheel cell = %q, want %q", got, GlyphWheel)
	}
	if got := rune(r.Row(10)[50]); got != GlyphEmpty {
		t.Errorf("open air cell = %q, want blank", got)
	}

	status := r.Status()
	if !strings.Contains(status, "tick 5") || !strings.Contains(status, "airborne") {
		t.Errorf("status = %q, want tick and state", status)
	}
}

func TestTerminalRenderer_RotatedChassis(t *testing.T) {
	frame := testFrame()
	frame.Vehicle.Chassis.Angle = 1.5707963267948966 // quarter turn
	frame.Vehicle.Chassis.Position.X = 10.25
	r := NewArenaTerminalRenderer(105, 40, frame.Bounds)

	r.RenderFrame(frame)

	// standing on end, the box spans rows 27..32 in column 10
	if got := rune(r.Row(28)[10]); got != GlyphChassis {
		t.Errorf("cell above centre = %q, want %q", got, GlyphChassis)
	}
	if got := rune(r.Row(30)[13]); got == GlyphChassis {
		t.Error("rotated chassis should not reach three cells to the right")
	}
}

func TestTerminalRenderer_Present_WritesBorderAndStatus(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(4, 2, 1)
	r.SetOutput(&buf)
	r.status = "tick 1"

	r.Present()

	output := buf.String()
	if !strings.Contains(output, "+----+\n|    |\n|    |\n+----+\n") {
		t.Errorf("unexpected frame output: %q", output)
	}
	if !strings.HasSuffix(output, "tick 1\n") {
		t.Errorf("expected status line last, got %q", output)
	}
}

func TestTerminalRenderer_Clear_ResetsBuffer(t *testing.T) {
	r := NewArenaTerminalRenderer(105, 40, testFrame().Bounds)
	r.RenderFrame(testFrame())

	r.Clear()

	for y := 0; y < 40; y++ {
		if strings.TrimSpace(r.Row(y)) != "" {
			t.Fatalf("row %d not cleared: %q", y, r.Row(y))
		}
	}
	if r.Status() != "" {
		t.Errorf("status not cleared: %q", r.Status())
	}
}
