package imlayout

// ============================================================================
// Host Toolkit Boundary
// ============================================================================
//
// The engine never paints, scrolls or delivers input itself. A retained-mode
// toolkit provides a render surface and constructible controls; see package
// retained for the in-memory implementation used by the demos and tests.

// Viewport describes the visible region of a surface in content coordinates.
type Viewport struct {
	Width, Height    float64
	ScrollX, ScrollY float64
}

// Rect returns the visible region as a rectangle.
func (v Viewport) Rect() Rect {
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// Surface is the container the engine positions controls on.
type Surface interface {
	// Add attaches a control to the surface.
	Add(c Control)
	// Remove detaches a control. Removing a detached control is a no-op.
	Remove(c Control)
	// Place positions an attached control at absolute content coordinates.
	Place(c Control, r Rect)
	// SetVisible hides or shows the whole surface at once.
	SetVisible(visible bool)
	// Viewport reports the visible size and scroll offset.
	Viewport() Viewport
	// ContentSize reports the scrollable content extent.
	ContentSize() (width, height float64)
	// SetContentSize sizes the scrollable content region.
	SetContentSize(width, height float64)
	// OnRenderPass registers fn to run once per render pass, before the
	// host presents the frame.
	OnRenderPass(fn func())
}

// Control is a host widget. Kind-specific operations that do not apply to a
// control (SetRange on a label) are ignored by the host.
//
// Passing nil to an On* method removes the subscription.
type Control interface {
	Text() string
	SetText(text string)

	Value() int
	SetValue(v int)
	SetRange(min, max int)

	OnClick(fn func())
	OnTextChanged(fn func(text string))
	OnAccept(fn func())
	OnValueChanged(fn func(v int))
	OnFocus(fn func())

	// Focus requests keyboard focus.
	Focus()
}

// Host supplies the surface and constructs controls by kind.
type Host interface {
	Surface() Surface
	NewControl(kind WidgetKind) Control
}
