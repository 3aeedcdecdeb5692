package retained

import (
	"unicode/utf8"

	"github.com/agiangrant/imlayout"
)

// Input simulation: the events a real windowing backend would deliver.
// Events on widgets that are not attached to the window are dropped, since
// nothing on screen could have produced them.

// ============================================================================
// Button
// ============================================================================

// Click presses a button. It reports whether the click was delivered.
func (w *Widget) Click() bool {
	if !w.attached || w.kind != imlayout.KindButton {
		return false
	}
	w.Focus()
	if w.onClick != nil {
		w.onClick()
	}
	return true
}

// ============================================================================
// Text Field
// ============================================================================

// Type appends s to a text field as if the user typed it.
func (w *Widget) Type(s string) bool {
	if !w.editable() || s == "" {
		return false
	}
	w.Focus()
	w.userEdit(w.text + s)
	return true
}

// Backspace deletes the last rune of a text field.
func (w *Widget) Backspace() bool {
	if !w.editable() || w.text == "" {
		return false
	}
	w.Focus()
	_, size := utf8.DecodeLastRuneInString(w.text)
	w.userEdit(w.text[:len(w.text)-size])
	return true
}

// Replace swaps the whole text of a text field, like select-all and type.
func (w *Widget) Replace(s string) bool {
	if !w.editable() || s == w.text {
		return false
	}
	w.Focus()
	w.userEdit(s)
	return true
}

// Submit presses Enter in a text field.
func (w *Widget) Submit() bool {
	if !w.editable() {
		return false
	}
	if w.onAccept != nil {
		w.onAccept()
	}
	return true
}

func (w *Widget) editable() bool {
	return w.attached && w.kind == imlayout.KindTextField
}

func (w *Widget) userEdit(text string) {
	w.text = text
	if w.onTextChanged != nil {
		w.onTextChanged(text)
	}
}

// ============================================================================
// Slider
// ============================================================================

// Drag moves a slider to v, clamped to its range. The change callback only
// fires if the value moved.
func (w *Widget) Drag(v int) bool {
	if !w.attached || w.kind != imlayout.KindSlider {
		return false
	}
	w.Focus()
	v = clamp(v, w.min, w.max)
	if v == w.value {
		return false
	}
	w.value = v
	if w.onValueChanged != nil {
		w.onValueChanged(v)
	}
	return true
}
