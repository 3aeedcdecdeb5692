package imlayout

// culler decides which laid-out rectangles need a materialized control.
type culler struct {
	enabled bool
	region  Rect
}

// update recomputes the padded region from the host viewport. The region
// extends pad pixels above and below the visible area so widgets just past
// the fold already exist when a fast scroll reveals them.
func (c *culler) update(v Viewport, pad float64) {
	r := v.Rect()
	r.Y -= pad
	r.Height += 2 * pad
	c.region = r
}

// visible reports whether r needs a control this frame.
func (c *culler) visible(r Rect) bool {
	if !c.enabled {
		return true
	}
	return intersects(c.region, r)
}

// intersects is an open intersection test: rectangles that only share an
// edge do not intersect.
func intersects(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}
