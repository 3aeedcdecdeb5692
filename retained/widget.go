// Package retained is an in-memory retained-mode widget toolkit. It keeps a
// window of positioned controls, reports a scrollable viewport, and lets
// callers simulate clicks, typing, slider drags and focus changes.
//
// It implements the host boundary of package imlayout, which makes it the
// toolkit the demos run on and the one the engine is tested against.
//
// The toolkit is single-threaded: all calls must come from the goroutine
// that drives render passes.
package retained

import (
	"fmt"
	"sync/atomic"

	"github.com/agiangrant/imlayout"
)

// WidgetID uniquely identifies a widget for the lifetime of the process.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// Widget is a retained control. Which operations do anything depends on its
// kind: only buttons click, only text fields take typing, only sliders drag.
type Widget struct {
	id     WidgetID
	kind   imlayout.WidgetKind
	window *Window

	text            string
	value, min, max int

	bounds   imlayout.Rect
	attached bool

	onClick        func()
	onTextChanged  func(string)
	onAccept       func()
	onValueChanged func(int)
	onFocus        func()
}

func newWidget(kind imlayout.WidgetKind, window *Window) *Widget {
	return &Widget{
		id:     newWidgetID(),
		kind:   kind,
		window: window,
		max:    100,
	}
}

// ID returns the widget's unique ID.
func (w *Widget) ID() WidgetID { return w.id }

// Kind returns the widget kind.
func (w *Widget) Kind() imlayout.WidgetKind { return w.kind }

// Bounds returns the rectangle the widget was last placed at.
func (w *Widget) Bounds() imlayout.Rect { return w.bounds }

// Attached reports whether the widget is currently a child of its window.
func (w *Widget) Attached() bool { return w.attached }

// Focused reports whether the widget has keyboard focus.
func (w *Widget) Focused() bool { return w.window.focused == w }

// Range returns the slider range.
func (w *Widget) Range() (min, max int) { return w.min, w.max }

func (w *Widget) String() string {
	return fmt.Sprintf("%s#%d", w.kind, w.id)
}

// ============================================================================
// imlayout.Control
// ============================================================================

// Text returns the displayed text.
func (w *Widget) Text() string { return w.text }

// SetText replaces the displayed text without firing change callbacks.
func (w *Widget) SetText(text string) {
	w.text = text
	w.window.stats.TextWrites++
}

// Value returns the slider value.
func (w *Widget) Value() int { return w.value }

// SetValue sets the slider value, clamped to the range, without firing
// change callbacks.
func (w *Widget) SetValue(v int) {
	w.value = clamp(v, w.min, w.max)
}

// SetRange sets the slider range and re-clamps the value.
func (w *Widget) SetRange(min, max int) {
	if max < min {
		max = min
	}
	w.min, w.max = min, max
	w.value = clamp(w.value, min, max)
}

// OnClick sets the click callback. Nil removes it.
func (w *Widget) OnClick(fn func()) { w.onClick = fn }

// OnTextChanged sets the callback for user edits of the text. Nil removes it.
func (w *Widget) OnTextChanged(fn func(string)) { w.onTextChanged = fn }

// OnAccept sets the callback for submitting a text field. Nil removes it.
func (w *Widget) OnAccept(fn func()) { w.onAccept = fn }

// OnValueChanged sets the callback for user slider drags. Nil removes it.
func (w *Widget) OnValueChanged(fn func(int)) { w.onValueChanged = fn }

// OnFocus sets the callback for gaining focus. Nil removes it.
func (w *Widget) OnFocus(fn func()) { w.onFocus = fn }

// Focus moves keyboard focus to the widget. The focus callback only fires
// when focus actually moves, so repeated requests are free.
func (w *Widget) Focus() {
	w.window.setFocus(w)
}

// Subscribed reports whether any event callback is set.
func (w *Widget) Subscribed() bool {
	return w.onClick != nil || w.onTextChanged != nil || w.onAccept != nil ||
		w.onValueChanged != nil || w.onFocus != nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
