package retained

import (
	"fmt"

	"github.com/agiangrant/imlayout"
)

// WindowStats counts surface traffic so callers can see how much work a
// frame caused on the toolkit side.
type WindowStats struct {
	Adds       int
	Removes    int
	Places     int
	TextWrites int
	Passes     int
}

// Window is a scrollable surface of absolutely positioned widgets.
type Window struct {
	width, height      float64
	scrollX, scrollY   float64
	contentW, contentH float64

	visible  bool
	children []*Widget
	focused  *Widget

	passes []func()
	stats  WindowStats
}

func newWindow(width, height float64) *Window {
	return &Window{
		width:   width,
		height:  height,
		visible: true,
	}
}

// ============================================================================
// imlayout.Surface
// ============================================================================

// Add attaches a widget created by this window's toolkit.
func (win *Window) Add(c imlayout.Control) {
	w := win.own(c)
	if w.attached {
		return
	}
	w.attached = true
	win.children = append(win.children, w)
	win.stats.Adds++
}

// Remove detaches a widget. Removing the focused widget clears focus.
func (win *Window) Remove(c imlayout.Control) {
	w := win.own(c)
	if !w.attached {
		return
	}
	for i, child := range win.children {
		if child == w {
			copy(win.children[i:], win.children[i+1:])
			win.children[len(win.children)-1] = nil
			win.children = win.children[:len(win.children)-1]
			break
		}
	}
	w.attached = false
	if win.focused == w {
		win.focused = nil
	}
	win.stats.Removes++
}

// Place positions an attached widget.
func (win *Window) Place(c imlayout.Control, r imlayout.Rect) {
	w := win.own(c)
	w.bounds = r
	win.stats.Places++
}

// SetVisible hides or shows the window contents.
func (win *Window) SetVisible(visible bool) {
	win.visible = visible
}

// Viewport reports the visible size and scroll offset.
func (win *Window) Viewport() imlayout.Viewport {
	return imlayout.Viewport{
		Width:   win.width,
		Height:  win.height,
		ScrollX: win.scrollX,
		ScrollY: win.scrollY,
	}
}

// ContentSize reports the scrollable content extent.
func (win *Window) ContentSize() (width, height float64) {
	return win.contentW, win.contentH
}

// SetContentSize sizes the scrollable region and pulls the scroll offset
// back inside it.
func (win *Window) SetContentSize(width, height float64) {
	win.contentW, win.contentH = width, height
	win.clampScroll()
}

// OnRenderPass registers a callback for every render pass.
func (win *Window) OnRenderPass(fn func()) {
	win.passes = append(win.passes, fn)
}

// ============================================================================
// Host side
// ============================================================================

// RenderPass runs the registered render-pass callbacks, as the windowing
// backend does before presenting each frame.
func (win *Window) RenderPass() {
	win.stats.Passes++
	for _, fn := range win.passes {
		fn()
	}
}

// Resize changes the visible size.
func (win *Window) Resize(width, height float64) {
	win.width, win.height = width, height
	win.clampScroll()
}

// Visible reports whether the contents are shown.
func (win *Window) Visible() bool {
	return win.visible
}

// Children returns the attached widgets in attach order.
func (win *Window) Children() []*Widget {
	out := make([]*Widget, len(win.children))
	copy(out, win.children)
	return out
}

// Find returns the first attached widget matching pred.
func (win *Window) Find(pred func(*Widget) bool) *Widget {
	for _, w := range win.children {
		if pred(w) {
			return w
		}
	}
	return nil
}

// FindText returns the first attached widget of the given kind showing text.
func (win *Window) FindText(kind imlayout.WidgetKind, text string) *Widget {
	return win.Find(func(w *Widget) bool {
		return w.kind == kind && w.text == text
	})
}

// Focused returns the widget with keyboard focus, if any.
func (win *Window) Focused() *Widget {
	return win.focused
}

// Stats returns the surface counters.
func (win *Window) Stats() WindowStats {
	return win.stats
}

// ResetStats zeroes the surface counters.
func (win *Window) ResetStats() {
	win.stats = WindowStats{}
}

func (win *Window) setFocus(w *Widget) {
	if win.focused == w || !w.attached {
		return
	}
	win.focused = w
	if w.onFocus != nil {
		w.onFocus()
	}
}

func (win *Window) own(c imlayout.Control) *Widget {
	w, ok := c.(*Widget)
	if !ok || w.window != win {
		panic(fmt.Sprintf("retained: control %v does not belong to this window", c))
	}
	return w
}
