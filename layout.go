package imlayout

import "math"

// Rect is an axis-aligned rectangle in content coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// LayoutSpec is a declarative size request for one widget.
type LayoutSpec struct {
	// Width is in pixels when Absolute is set, otherwise a fraction of the
	// width remaining on the current line.
	Width float64
	// Absolute selects pixel width instead of a fraction.
	Absolute bool
	// SameLine keeps the cursor on the current line after this widget.
	SameLine bool
}

// Fill takes the whole remaining line and ends it.
var Fill = LayoutSpec{Width: 1}

// FixedWidth requests a width in pixels.
func FixedWidth(px float64, sameLine bool) LayoutSpec {
	return LayoutSpec{Width: px, Absolute: true, SameLine: sameLine}
}

// RelativeWidth requests a fraction of the width remaining on the line.
func RelativeWidth(fraction float64, sameLine bool) LayoutSpec {
	return LayoutSpec{Width: fraction, SameLine: sameLine}
}

// cursor is the flow-layout position within the content area.
type cursor struct {
	x, y       float64
	lineHeight float64
	margin     float64
}

func (c *cursor) reset() {
	c.x = c.margin
	c.y = c.margin
}

// placeAndAdvance converts spec into a rectangle at the cursor and moves the
// cursor past it, starting a new line unless spec.SameLine is set.
func (c *cursor) placeAndAdvance(spec LayoutSpec, canvasWidth float64) Rect {
	var width float64
	if spec.Absolute {
		width = spec.Width
	} else {
		remaining := math.Max(canvasWidth-c.x-c.margin/2, 0)
		width = remaining * spec.Width
	}
	width = math.Max(width, 0)

	r := Rect{X: c.x, Y: c.y, Width: width, Height: c.lineHeight}

	c.x += width + c.margin
	if !spec.SameLine {
		c.x = c.margin
		c.y += c.lineHeight
	}
	return r
}

// contentHeight is the extent of everything laid out so far, including the
// line the cursor currently sits on.
func (c *cursor) contentHeight() float64 {
	return c.y + c.lineHeight
}
