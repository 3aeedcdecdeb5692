// Package imlayout is an immediate-mode layout engine for retained-mode UI
// toolkits.
//
// Every frame the application describes its UI by calling emit functions
// (Button, Label, EditText, ...) between Begin and End. The engine matches
// each call to the control it created on the previous frame, creates
// controls for new calls, and retires controls whose calls disappeared.
// Widgets are laid out with a flow cursor and only widgets near the visible
// viewport get a control at all.
//
// A Layout is not safe for concurrent use; drive it from the host's UI
// thread.
package imlayout

import (
	"fmt"
	"log"
	"math"
)

type frameState uint8

const (
	stateIdle frameState = iota
	stateBuilding
)

// Layout reconciles declarative widget calls against host controls.
type Layout struct {
	cfg     Config
	log     *log.Logger
	host    Host
	surface Surface

	state  frameState
	hasher frameHasher
	cursor cursor
	cull   culler
	// canvasWidth is the viewport width captured by Begin.
	canvasWidth float64

	pool  *controlPool
	reg   *registry
	sched scheduler
	focus []focusRequest

	frame         FrameStats
	last          FrameStats
	frameNumber   uint64
	contentHeight float64
}

// New creates a layout on the host's surface and registers its redraw check
// with the surface's render pass.
func New(host Host, cfg Config) (*Layout, error) {
	if host == nil {
		return nil, fmt.Errorf("failed to create layout: nil host")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create layout: %w", err)
	}

	l := &Layout{
		cfg:     cfg,
		log:     cfg.logger(),
		host:    host,
		surface: host.Surface(),
		cursor: cursor{
			lineHeight: cfg.Style.LineHeight,
			margin:     cfg.Style.Margin,
		},
		cull: culler{enabled: cfg.Culling.Enabled},
	}
	l.pool = newControlPool(cfg.Pool.Capacity, host.NewControl)
	l.reg = newRegistry(l.pool, l.surface, l.MarkDirty)
	l.surface.OnRenderPass(func() { l.Tick() })
	return l, nil
}

// Begin starts a frame. It panics if a frame is already being built.
func (l *Layout) Begin() {
	if l.state != stateIdle {
		violation("Layout.Begin", KindProtocol, "Begin called while frame %d is being built", l.frame.Frame)
	}
	l.state = stateBuilding

	l.hasher.reset()
	l.cursor.reset()

	vp := l.surface.Viewport()
	l.canvasWidth = vp.Width
	l.cull.update(vp, l.cfg.Culling.MarginLines*l.cursor.lineHeight)

	l.frame = FrameStats{Frame: l.frameNumber + 1}

	// Hidden while children are added, removed and moved.
	l.surface.SetVisible(false)
}

// End finishes the frame: it sizes the content region, retires every
// control the frame did not claim and shows the surface again.
func (l *Layout) End() {
	l.mustBuild("Layout.End")
	if n := len(l.focus); n != 0 {
		violation("Layout.End", KindProtocol, "%d focus flag(s) still pushed", n)
	}

	l.contentHeight = l.cursor.contentHeight()

	l.frame.Retired = l.reg.retireUnclaimed()
	l.reg.swap()

	vp := l.surface.Viewport()
	l.surface.SetContentSize(vp.Width, math.Max(l.contentHeight, vp.Height))
	l.surface.SetVisible(true)

	l.frameNumber++
	l.frame.ContentHeight = l.contentHeight
	l.frame.Pool = l.pool.stats
	l.last = l.frame
	l.state = stateIdle

	if l.cfg.Debug.LogFrames {
		l.log.Print(l.last)
	}
}

// Building reports whether a frame is between Begin and End.
func (l *Layout) Building() bool {
	return l.state == stateBuilding
}

// SetStyle changes the line height and margin used from the next frame on.
// It must not be called while a frame is being built.
func (l *Layout) SetStyle(lineHeight, margin float64) {
	if l.state != stateIdle {
		violation("Layout.SetStyle", KindProtocol, "style changed during a frame")
	}
	if lineHeight <= 0 || margin < 0 {
		violation("Layout.SetStyle", KindProtocol, "invalid style: line height %v, margin %v", lineHeight, margin)
	}
	l.cfg.Style.LineHeight = lineHeight
	l.cfg.Style.Margin = margin
	l.cursor.lineHeight = lineHeight
	l.cursor.margin = margin
	l.MarkDirty()
}

// Style returns the current line height and margin.
func (l *Layout) Style() (lineHeight, margin float64) {
	return l.cursor.lineHeight, l.cursor.margin
}

// ContentHeight returns the content height computed by the last End.
func (l *Layout) ContentHeight() float64 {
	return l.contentHeight
}

// Stats returns the stats of the last finished frame.
func (l *Layout) Stats() FrameStats {
	return l.last
}

// PoolSize returns the number of retired controls of a kind kept for reuse.
func (l *Layout) PoolSize(kind WidgetKind) int {
	return l.pool.size(kind)
}

// WidgetCount returns the number of controls owned by the registry after the
// last frame, attached or not.
func (l *Layout) WidgetCount() int {
	prev, cur := l.reg.len()
	if l.state == stateBuilding {
		return prev + cur
	}
	return prev
}

func (l *Layout) mustBuild(op string) {
	if l.state != stateBuilding {
		violation(op, KindProtocol, "called outside Begin/End")
	}
}

// place lays out one widget part at the cursor and, when it is near the
// viewport, reuses or creates its control.
func (l *Layout) place(op string, key Key, spec LayoutSpec, c content, h handlers) {
	r := l.cursor.placeAndAdvance(spec, l.canvasWidth)
	l.frame.Emitted++

	if l.reg.claimed(key) {
		l.collision(op, key)
		return
	}

	e := l.reg.claim(key)
	if e != nil && e.kind != c.kind() {
		l.reg.discard(e)
		e = nil
	}

	if !l.cull.visible(r) {
		l.frame.Culled++
		if e != nil {
			// Keep the entry so scrolling back does not allocate.
			l.reg.hide(e)
		}
		return
	}

	if e == nil {
		e = l.reg.create(key, c, h)
		l.frame.Created++
	} else {
		if l.reg.rebind(e, c, h) {
			l.frame.Rebound++
		}
		l.frame.Reused++
	}

	l.reg.show(e, Rect{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: math.Max(l.cursor.lineHeight-l.cursor.margin, 0),
	})
	l.takeFocus(e)
}

func (l *Layout) collision(op string, key Key) {
	l.frame.Collided++
	if l.cfg.Debug.DetectCollisions {
		violation(op, KindCollision, "identity key %#016x already used in frame %d", uint64(key), l.frame.Frame)
	}
	l.log.Printf("imlayout: %s: identity key %#016x already used in frame %d, skipping", op, uint64(key), l.frame.Frame)
}
