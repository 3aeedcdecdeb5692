package imlayout

import "math"

// observedState is the host state a frame's layout depends on.
type observedState struct {
	width, height, scrollY float64
}

// changeTolerance ignores sub-pixel jitter in host sizes and offsets.
const changeTolerance = 0.1

func (s observedState) differs(o observedState) bool {
	return math.Abs(s.width-o.width) > changeTolerance ||
		math.Abs(s.height-o.height) > changeTolerance ||
		math.Abs(s.scrollY-o.scrollY) > changeTolerance
}

// scheduler decides when a render pass needs a new frame. Redraws are demand
// driven: nothing runs while the host state is unchanged and no callback
// marked the layout dirty.
type scheduler struct {
	last   observedState
	seen   bool
	dirty  bool
	redraw func()
}

// BindRedrawFunc sets the draw callback that Tick runs between Begin and End.
func (l *Layout) BindRedrawFunc(fn func()) {
	l.sched.redraw = fn
	l.MarkDirty()
}

// MarkDirty forces the next tick to rebuild the frame.
func (l *Layout) MarkDirty() {
	l.sched.dirty = true
}

// MarkEdit is MarkDirty under the name application code uses after
// changing state the UI displays.
func (l *Layout) MarkEdit() {
	l.MarkDirty()
}

// Dirty reports whether a rebuild is pending.
func (l *Layout) Dirty() bool {
	return l.sched.dirty
}

// Tick is the render-pass hook. It runs one frame if the viewport size or
// scroll offset changed, the layout was marked dirty, or the content region
// is shorter than the visible area. It reports whether a frame ran.
//
// Ticks that arrive while a frame is being built are ignored.
func (l *Layout) Tick() bool {
	if l.state == stateBuilding {
		return false
	}

	vp := l.surface.Viewport()
	obs := observedState{width: vp.Width, height: vp.Height, scrollY: vp.ScrollY}

	need := false
	if !l.sched.seen || obs.differs(l.sched.last) {
		l.sched.last = obs
		l.sched.seen = true
		need = true
	}
	if l.sched.dirty {
		l.sched.dirty = false
		need = true
	}
	if _, h := l.surface.ContentSize(); h+changeTolerance < vp.Height {
		need = true
	}

	if !need {
		return false
	}
	l.RunFrame()
	return true
}

// RunFrame builds one frame with the bound draw callback.
func (l *Layout) RunFrame() {
	l.Begin()
	if l.sched.redraw != nil {
		l.sched.redraw()
	}
	l.End()
}
