package imlayout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCursorPlacement(t *testing.T) {
	c := cursor{lineHeight: 32, margin: 4}
	c.reset()

	a := c.placeAndAdvance(FixedWidth(100, true), 800)
	b := c.placeAndAdvance(FixedWidth(50, false), 800)

	want := []Rect{
		{X: 4, Y: 4, Width: 100, Height: 32},
		{X: 108, Y: 4, Width: 50, Height: 32},
	}
	if diff := cmp.Diff(want, []Rect{a, b}); diff != "" {
		t.Errorf("placed rects mismatch (-want +got):\n%s", diff)
	}
	if c.x != 4 || c.y != 36 {
		t.Errorf("cursor = (%v, %v), want (4, 36)", c.x, c.y)
	}
	if got := c.contentHeight(); got != 68 {
		t.Errorf("contentHeight() = %v, want 68", got)
	}
}

func TestCursorRelativeWidth(t *testing.T) {
	tests := []struct {
		name     string
		canvas   float64
		startX   float64
		fraction float64
		want     float64
	}{
		{"full line", 800, 4, 1, 800 - 4 - 2},
		{"half line", 800, 4, 0.5, (800 - 4 - 2) * 0.5},
		{"after a widget", 800, 108, 0.5, (800 - 108 - 2) * 0.5},
		{"canvas exhausted", 100, 200, 1, 0},
		{"negative fraction", 800, 4, -1, 0},
		{"zero fraction", 800, 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursor{lineHeight: 32, margin: 4}
			c.reset()
			c.x = tt.startX
			r := c.placeAndAdvance(RelativeWidth(tt.fraction, true), tt.canvas)
			if r.Width != tt.want {
				t.Errorf("width = %v, want %v", r.Width, tt.want)
			}
			if r.Width < 0 {
				t.Errorf("width %v is negative", r.Width)
			}
		})
	}
}

func TestCursorNegativeFixedWidth(t *testing.T) {
	c := cursor{lineHeight: 32, margin: 4}
	c.reset()
	r := c.placeAndAdvance(FixedWidth(-20, true), 800)
	if r.Width != 0 {
		t.Errorf("width = %v, want 0", r.Width)
	}
	if c.x != 8 {
		t.Errorf("cursor x = %v, want 8", c.x)
	}
}

func TestCursorLineBreaks(t *testing.T) {
	c := cursor{lineHeight: 20, margin: 2}
	c.reset()

	var ys []float64
	for i := 0; i < 4; i++ {
		ys = append(ys, c.placeAndAdvance(Fill, 300).Y)
	}
	if diff := cmp.Diff([]float64{2, 22, 42, 62}, ys); diff != "" {
		t.Errorf("line y mismatch (-want +got):\n%s", diff)
	}
	if got := c.contentHeight(); got != 102 {
		t.Errorf("contentHeight() = %v, want 102", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges = (%v, %v), want (40, 60)", r.Right(), r.Bottom())
	}
}
