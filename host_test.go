package imlayout

// fakeControl records what the engine did to it.
type fakeControl struct {
	kind     WidgetKind
	text     string
	value    int
	min, max int

	textWrites  int
	valueWrites int
	focused     int

	onClick        func()
	onTextChanged  func(string)
	onAccept       func()
	onValueChanged func(int)
	onFocus        func()
}

func (c *fakeControl) Text() string { return c.text }

func (c *fakeControl) SetText(text string) {
	c.text = text
	c.textWrites++
}

func (c *fakeControl) Value() int { return c.value }

func (c *fakeControl) SetValue(v int) {
	c.value = v
	c.valueWrites++
}

func (c *fakeControl) SetRange(min, max int) { c.min, c.max = min, max }

func (c *fakeControl) OnClick(fn func())             { c.onClick = fn }
func (c *fakeControl) OnTextChanged(fn func(string)) { c.onTextChanged = fn }
func (c *fakeControl) OnAccept(fn func())            { c.onAccept = fn }
func (c *fakeControl) OnValueChanged(fn func(v int)) { c.onValueChanged = fn }
func (c *fakeControl) OnFocus(fn func())             { c.onFocus = fn }
func (c *fakeControl) Focus()                        { c.focused++ }

func (c *fakeControl) subscribed() bool {
	return c.onClick != nil || c.onTextChanged != nil || c.onAccept != nil ||
		c.onValueChanged != nil || c.onFocus != nil
}

// fakeHost is a surface and control factory with a settable viewport.
type fakeHost struct {
	vp       Viewport
	contentW float64
	contentH float64
	visible  bool

	attached map[*fakeControl]Rect
	passes   []func()

	constructed int
	adds        int
	removes     int
}

func newFakeHost(width, height float64) *fakeHost {
	return &fakeHost{
		vp:       Viewport{Width: width, Height: height},
		visible:  true,
		attached: make(map[*fakeControl]Rect),
	}
}

func (h *fakeHost) Surface() Surface { return h }

func (h *fakeHost) NewControl(kind WidgetKind) Control {
	h.constructed++
	return &fakeControl{kind: kind}
}

func (h *fakeHost) Add(c Control) {
	h.attached[c.(*fakeControl)] = Rect{}
	h.adds++
}

func (h *fakeHost) Remove(c Control) {
	fc := c.(*fakeControl)
	if _, ok := h.attached[fc]; !ok {
		return
	}
	delete(h.attached, fc)
	h.removes++
}

func (h *fakeHost) Place(c Control, r Rect) {
	h.attached[c.(*fakeControl)] = r
}

func (h *fakeHost) SetVisible(visible bool)      { h.visible = visible }
func (h *fakeHost) Viewport() Viewport           { return h.vp }
func (h *fakeHost) ContentSize() (w, hh float64) { return h.contentW, h.contentH }

func (h *fakeHost) SetContentSize(w, hh float64) {
	h.contentW, h.contentH = w, hh
}

func (h *fakeHost) OnRenderPass(fn func()) { h.passes = append(h.passes, fn) }

func (h *fakeHost) renderPass() {
	for _, fn := range h.passes {
		fn()
	}
}

// find returns the attached control showing text, or nil.
func (h *fakeHost) find(kind WidgetKind, text string) *fakeControl {
	for c := range h.attached {
		if c.kind == kind && c.text == text {
			return c
		}
	}
	return nil
}

func newTestLayout(h *fakeHost, mutate ...func(*Config)) *Layout {
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	l, err := New(h, cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// frame runs draw as one Begin/End pass.
func frame(l *Layout, draw func()) {
	l.Begin()
	draw()
	l.End()
}

// expectViolation runs fn and returns the ProtocolError it panicked with, or
// nil if it did not panic.
func expectViolation(fn func()) (perr *ProtocolError) {
	defer func() {
		if r := recover(); r != nil {
			perr = r.(*ProtocolError)
		}
	}()
	fn()
	return nil
}
