package retained

import "math"

// ============================================================================
// Scrolling
// ============================================================================

// DefaultScrollPadding is the gap kept between a widget and the viewport
// edge by ScrollIntoView.
const DefaultScrollPadding = 20

// ScrollTo sets the vertical scroll offset, clamped to the content.
func (win *Window) ScrollTo(y float64) {
	win.scrollY = y
	win.clampScroll()
}

// ScrollBy scrolls by dy pixels.
func (win *Window) ScrollBy(dy float64) {
	win.ScrollTo(win.scrollY + dy)
}

// MaxScroll returns the largest valid vertical offset.
func (win *Window) MaxScroll() float64 {
	return math.Max(win.contentH-win.height, 0)
}

// ScrollIntoView scrolls so w is fully visible with padding around it. It
// reports whether the offset changed.
func (win *Window) ScrollIntoView(w *Widget, padding float64) bool {
	target, ok := scrollTarget(w.bounds.Y, w.bounds.Height, win.scrollY, win.height, padding)
	if !ok {
		return false
	}
	before := win.scrollY
	win.ScrollTo(target)
	return win.scrollY != before
}

// scrollTarget calculates the offset that makes [top, top+height) visible
// within a viewport of viewHeight currently scrolled to current. It returns
// false when the range is already visible.
func scrollTarget(top, height, current, viewHeight, padding float64) (float64, bool) {
	bottom := top + height
	visibleTop := current + padding
	visibleBottom := current + viewHeight - padding

	if top >= visibleTop && bottom <= visibleBottom {
		return current, false
	}

	var target float64
	if bottom > visibleBottom {
		target = bottom - viewHeight + padding
		// Never push the top edge out of view.
		if maxTarget := top - padding; target > maxTarget {
			target = maxTarget
		}
	} else {
		target = top - padding
	}
	return math.Max(target, 0), true
}

func (win *Window) clampScroll() {
	win.scrollY = math.Min(math.Max(win.scrollY, 0), win.MaxScroll())
	win.scrollX = math.Max(win.scrollX, 0)
}
