// pkg/physics/shape_test.go
package physics

import "testing"

func TestRectFromCorner(t *testing.T) {
	r := RectFromCorner(Vector2D{X: -2, Y: 40}, 109, 2)

	if r.Center != (Vector2D{X: 52.5, Y: 41}) {
		t.Errorf("Center = %v, expected {52.5 41}", r.Center)
	}
	if r.HalfExtents() != (Vector2D{X: 54.5, Y: 1}) {
		t.Errorf("HalfExtents() = %v", r.HalfExtents())
	}
	if r.Corner() != (Vector2D{X: -2, Y: 40}) {
		t.Errorf("Corner() = %v, expected the input corner", r.Corner())
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Center: Vector2D{X: 0, Y: 0}, Width: 4, Height: 2}
	tests := []struct {
		name  string
		point Vector2D
		want  bool
	}{
		{"center", Vector2D{}, true},
		{"edge", Vector2D{X: 2, Y: 1}, true},
		{"outside x", Vector2D{X: 2.1, Y: 0}, false},
		{"outside y", Vector2D{X: 0, Y: -1.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestCircle_Overlaps(t *testing.T) {
	a := Circle{Center: Vector2D{}, Radius: 1}
	if !a.Overlaps(Circle{Center: Vector2D{X: 1.5}, Radius: 1}) {
		t.Error("expected overlapping circles")
	}
	if a.Overlaps(Circle{Center: Vector2D{X: 2.5}, Radius: 1}) {
		t.Error("expected separate circles")
	}
}
