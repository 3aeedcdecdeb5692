package imlayout

import (
	"fmt"
	"strconv"
)

// Emit calls. Each one is only valid between Begin and End. The id names the
// call site; it only has to be stable across frames, not unique, because the
// engine folds the call's position in the frame into its identity.

// Button emits a push button. onClick runs when the host reports a click.
func (l *Layout) Button(id, label string, onClick func(), spec LayoutSpec) {
	l.mustBuild("Layout.Button")
	key := l.hasher.next(id)
	l.place("Layout.Button", key, spec, buttonContent{label: label}, handlers{onClick: onClick})
}

// Label emits a single line of read-only text.
func (l *Layout) Label(id, text string, spec LayoutSpec) {
	l.mustBuild("Layout.Label")
	key := l.hasher.next(id)
	l.place("Layout.Label", key, spec, labelContent{text: text}, handlers{})
}

// TextBlock emits read-only text backed by a text block control.
func (l *Layout) TextBlock(id, text string, spec LayoutSpec) {
	l.mustBuild("Layout.TextBlock")
	key := l.hasher.next(id)
	l.place("Layout.TextBlock", key, spec, labelContent{text: text, block: true}, handlers{})
}

// EditText emits a label followed by a text field on the same line. The
// label takes 30% of the line; spec sizes the field. onEdit receives every
// change to the field's text and onAccept runs when the user submits it.
func (l *Layout) EditText(id, label, content string, spec LayoutSpec, onEdit func(string), onAccept func()) {
	const op = "Layout.EditText"
	l.mustBuild(op)
	key := l.hasher.next(id)

	l.place(op, key, RelativeWidth(0.3, true), labelContent{text: label}, handlers{})
	l.place(op, key.sub(saltEditField), spec, fieldContent{text: content},
		handlers{onEdit: onEdit, onAccept: onAccept})
}

// DragInt emits a label followed by a slider over [min, max]. value is
// clamped into the range; a max below min is raised to min.
func (l *Layout) DragInt(id, label string, value, min, max int, spec LayoutSpec, onChange func(int)) {
	const op = "Layout.DragInt"
	l.mustBuild(op)
	key := l.hasher.next(id)

	if max < min {
		max = min
	}
	value = clampInt(value, min, max)

	l.place(op, key, RelativeWidth(0.3, true), labelContent{text: label}, handlers{})
	l.place(op, key.sub(saltDragField), spec, sliderContent{value: value, min: min, max: max},
		handlers{onChange: onChange})
}

// Vec3 is a three component vector edited by EditVec3.
type Vec3 struct {
	X, Y, Z float64
}

// EditVec3 emits a label and three numeric fields on one line. Each field
// shows its component with two decimals; edits that parse as a number are
// reported through onEdit with the component replaced, others are ignored.
func (l *Layout) EditVec3(id, label string, v Vec3, onEdit func(Vec3)) {
	const op = "Layout.EditVec3"
	l.mustBuild(op)
	key := l.hasher.next(id)
	kx := key.sub(saltVecX)
	ky := kx.sub(saltVecY)
	kz := ky.sub(saltVecZ)

	l.place(op, key, RelativeWidth(0.2, true), labelContent{text: label}, handlers{})

	component := func(set func(*Vec3, float64)) func(string) {
		return func(text string) {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil || onEdit == nil {
				return
			}
			next := v
			set(&next, f)
			onEdit(next)
		}
	}
	l.place(op, kx, RelativeWidth(0.333, true), fieldContent{text: formatComponent(v.X)},
		handlers{onEdit: component(func(p *Vec3, f float64) { p.X = f })})
	l.place(op, ky, RelativeWidth(0.5, true), fieldContent{text: formatComponent(v.Y)},
		handlers{onEdit: component(func(p *Vec3, f float64) { p.Y = f })})
	l.place(op, kz, RelativeWidth(1, false), fieldContent{text: formatComponent(v.Z)},
		handlers{onEdit: component(func(p *Vec3, f float64) { p.Z = f })})
}

func formatComponent(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
