package imlayout

type focusRequest struct {
	consumed bool
}

// PushFocusFlag requests keyboard focus for the next focusable widget that
// gets a control this frame.
func (l *Layout) PushFocusFlag() {
	l.mustBuild("Layout.PushFocusFlag")
	l.focus = append(l.focus, focusRequest{})
}

// PopFocusFlag ends the innermost focus request and reports whether a
// widget took focus because of it.
func (l *Layout) PopFocusFlag() bool {
	l.mustBuild("Layout.PopFocusFlag")
	n := len(l.focus)
	if n == 0 {
		violation("Layout.PopFocusFlag", KindProtocol, "no focus flag pushed")
	}
	req := l.focus[n-1]
	l.focus = l.focus[:n-1]
	return req.consumed
}

func (l *Layout) takeFocus(e *entry) {
	n := len(l.focus)
	if n == 0 || l.focus[n-1].consumed || !e.kind.Focusable() {
		return
	}
	l.focus[n-1].consumed = true
	e.control.Focus()
}
