package imlayout

// ============================================================================
// Control Pooling
// ============================================================================
//
// Retired controls are kept per kind so the next frame that needs one of the
// same kind can take it instead of asking the host to construct a new one.
// Each kind's free list is capped; controls released past the cap are
// dropped and left to the host to reclaim.
//
// Usage:
//   c := pool.acquire(KindButton)
//   ... bind and attach c ...
//   pool.release(KindButton, c)

// PoolStats counts pool traffic since the engine was created.
type PoolStats struct {
	Constructed uint64 // controls built by the host because the pool was empty
	Recycled    uint64 // controls handed out from a free list
	Dropped     uint64 // released controls discarded because the free list was full
}

type controlPool struct {
	capacity int
	newFn    func(WidgetKind) Control
	free     [numKinds][]Control
	pooled   map[Control]struct{}
	stats    PoolStats
}

func newControlPool(capacity int, newFn func(WidgetKind) Control) *controlPool {
	return &controlPool{
		capacity: capacity,
		newFn:    newFn,
		pooled:   make(map[Control]struct{}),
	}
}

// acquire pops a control of the given kind or constructs one.
func (p *controlPool) acquire(kind WidgetKind) Control {
	free := p.free[kind]
	if n := len(free); n > 0 {
		c := free[n-1]
		free[n-1] = nil
		p.free[kind] = free[:n-1]
		delete(p.pooled, c)
		p.stats.Recycled++
		return c
	}
	p.stats.Constructed++
	return p.newFn(kind)
}

// release detaches every subscription from c and keeps it for reuse if the
// kind's free list has room.
func (p *controlPool) release(kind WidgetKind, c Control) {
	if _, ok := p.pooled[c]; ok {
		violation("pool.release", KindInvariant, "%s control released twice", kind)
	}
	unsubscribe(c)

	if len(p.free[kind]) >= p.capacity {
		p.stats.Dropped++
		return
	}
	p.free[kind] = append(p.free[kind], c)
	p.pooled[c] = struct{}{}
}

// size returns the number of free controls of a kind.
func (p *controlPool) size(kind WidgetKind) int {
	return len(p.free[kind])
}

func unsubscribe(c Control) {
	c.OnClick(nil)
	c.OnTextChanged(nil)
	c.OnAccept(nil)
	c.OnValueChanged(nil)
	c.OnFocus(nil)
}
