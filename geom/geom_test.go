package geom

import (
	"testing"
)

func TestRectangleAccessors(t *testing.T) {
	r := NewRectangle(10, 20, 30, 40)
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("unexpected edges: %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("unexpected center: %v,%v", r.CenterX(), r.CenterY())
	}
	corners := r.Corners()
	want := [4]Point{{10, 20}, {40, 20}, {10, 60}, {40, 60}}
	if corners != want {
		t.Errorf("corners = %v, want %v", corners, want)
	}
}

func TestRectangleIntersects(t *testing.T) {
	base := NewRectangle(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"overlapping", NewRectangle(5, 5, 10, 10), true},
		{"contained", NewRectangle(2, 2, 4, 4), true},
		{"touching right edge", NewRectangle(10, 0, 5, 5), true},
		{"touching corner", NewRectangle(10, 10, 5, 5), true},
		{"disjoint", NewRectangle(11, 0, 5, 5), false},
		{"above", NewRectangle(0, -6, 10, 5), false},
	}
	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(base); got != tt.want {
			t.Errorf("%s (flipped): Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectangleContainsPoint(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	if !r.ContainsPoint(Point{X: 0, Y: 0}) || !r.ContainsPoint(Point{X: 10, Y: 10}) {
		t.Errorf("bounds should be inclusive")
	}
	if r.ContainsPoint(Point{X: 10.5, Y: 5}) {
		t.Errorf("point outside should not be contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %v", got)
	}
}
