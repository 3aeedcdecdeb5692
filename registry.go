package imlayout

// entry owns one host control for as long as its key keeps being emitted.
type entry struct {
	key      Key
	kind     WidgetKind
	control  Control
	content  content
	handlers handlers
	attached bool
}

// registry maps identity keys to entries across two generations. previous
// holds what the last frame built; current collects what this frame claims
// or creates. A key is never in both.
type registry struct {
	previous map[Key]*entry
	current  map[Key]*entry

	pool    *controlPool
	surface Surface
	// changed is called after any control event has been dispatched.
	changed func()
}

func newRegistry(pool *controlPool, surface Surface, changed func()) *registry {
	return &registry{
		previous: make(map[Key]*entry),
		current:  make(map[Key]*entry),
		pool:     pool,
		surface:  surface,
		changed:  changed,
	}
}

// claimed reports whether key was already claimed or created this frame.
func (r *registry) claimed(key Key) bool {
	_, ok := r.current[key]
	return ok
}

// claim moves the previous-frame entry for key into the current frame.
// It returns nil when the last frame had no such widget.
func (r *registry) claim(key Key) *entry {
	e, ok := r.previous[key]
	if !ok {
		return nil
	}
	delete(r.previous, key)
	r.current[key] = e
	return e
}

// create takes a control from the pool, binds it and tracks it in the
// current frame. The control is not attached until show is called.
func (r *registry) create(key Key, c content, h handlers) *entry {
	e := &entry{
		key:      key,
		kind:     c.kind(),
		control:  r.pool.acquire(c.kind()),
		content:  c,
		handlers: h,
	}
	c.write(e.control)
	r.subscribe(e)
	r.current[key] = e
	return e
}

// rebind refreshes the entry's handlers and writes c to the control if it
// differs from what the control already shows. It reports whether a write
// happened.
func (r *registry) rebind(e *entry, c content, h handlers) bool {
	e.handlers = h
	if e.content == c {
		return false
	}
	e.content = c
	c.write(e.control)
	return true
}

// show attaches the entry's control if needed and positions it.
func (r *registry) show(e *entry, rect Rect) {
	if !e.attached {
		r.surface.Add(e.control)
		e.attached = true
	}
	r.surface.Place(e.control, rect)
}

// hide detaches the entry's control but keeps the entry.
func (r *registry) hide(e *entry) {
	if !e.attached {
		return
	}
	r.surface.Remove(e.control)
	e.attached = false
}

// discard retires an entry claimed this frame, e.g. when its key now
// carries a different widget kind.
func (r *registry) discard(e *entry) {
	delete(r.current, e.key)
	r.retire(e)
}

// retireUnclaimed retires every entry the current frame did not claim and
// returns how many there were.
func (r *registry) retireUnclaimed() int {
	n := len(r.previous)
	for key, e := range r.previous {
		r.retire(e)
		delete(r.previous, key)
	}
	return n
}

// swap makes the current frame's entries the next frame's previous
// generation.
func (r *registry) swap() {
	r.previous, r.current = r.current, r.previous
}

// retire detaches the control, drops handler references and returns the
// control to the pool.
func (r *registry) retire(e *entry) {
	r.hide(e)
	e.handlers = handlers{}
	r.pool.release(e.kind, e.control)
	e.control = nil
	e.content = nil
}

// subscribe routes the control's events through the entry so the handlers
// bound by the latest frame are the ones that run.
func (r *registry) subscribe(e *entry) {
	c := e.control
	c.OnClick(func() {
		if fn := e.handlers.onClick; fn != nil {
			fn()
		}
		r.changed()
	})
	c.OnTextChanged(func(text string) {
		if _, ok := e.content.(fieldContent); ok {
			e.content = fieldContent{text: text}
		}
		if fn := e.handlers.onEdit; fn != nil {
			fn(text)
		}
		r.changed()
	})
	c.OnAccept(func() {
		if fn := e.handlers.onAccept; fn != nil {
			fn()
		}
		r.changed()
	})
	c.OnValueChanged(func(v int) {
		if s, ok := e.content.(sliderContent); ok {
			s.value = v
			e.content = s
		}
		if fn := e.handlers.onChange; fn != nil {
			fn(v)
		}
		r.changed()
	})
	c.OnFocus(func() {
		r.changed()
	})
}

// len returns the number of entries in each generation.
func (r *registry) len() (previous, current int) {
	return len(r.previous), len(r.current)
}
