package imlayout

import "testing"

func TestTickRedrawConditions(t *testing.T) {
	h := newFakeHost(400, 300)
	l := newTestLayout(h)

	frames := 0
	l.BindRedrawFunc(func() {
		frames++
		l.Label("x", "x", Fill)
	})

	steps := []struct {
		name   string
		change func()
		want   bool
	}{
		{"first pass", func() {}, true},
		{"unchanged", func() {}, false},
		{"sub-pixel scroll", func() { h.vp.ScrollY += 0.05 }, false},
		{"scroll", func() { h.vp.ScrollY += 10 }, true},
		{"resize", func() { h.vp.Width = 500 }, true},
		{"dirty", func() { l.MarkDirty() }, true},
		{"edit", func() { l.MarkEdit() }, true},
		{"content shorter than viewport", func() { h.contentH = 100 }, true},
		{"settled", func() {}, false},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			step.change()
			before := frames
			if got := l.Tick(); got != step.want {
				t.Errorf("Tick() = %v, want %v", got, step.want)
			}
			ran := frames > before
			if ran != step.want {
				t.Errorf("draw ran = %v, want %v", ran, step.want)
			}
			if l.Dirty() {
				t.Error("still dirty after Tick")
			}
		})
	}
}

func TestRenderPassRunsTick(t *testing.T) {
	h := newFakeHost(400, 300)
	l := newTestLayout(h)

	frames := 0
	l.BindRedrawFunc(func() {
		frames++
		l.Button("b", "B", nil, Fill)
	})

	h.renderPass()
	h.renderPass()
	if frames != 1 {
		t.Fatalf("frames = %d after two idle passes, want 1", frames)
	}

	h.find(KindButton, "B").onClick()
	h.renderPass()
	if frames != 2 {
		t.Errorf("frames = %d after a click, want 2", frames)
	}
}

func TestTickIgnoredWhileBuilding(t *testing.T) {
	h := newFakeHost(400, 300)
	l := newTestLayout(h)

	var nested bool
	l.BindRedrawFunc(func() {
		nested = l.Tick()
		l.Label("x", "x", Fill)
	})

	if !l.Tick() {
		t.Fatal("first Tick did not run a frame")
	}
	if nested {
		t.Error("Tick ran a frame from inside the draw callback")
	}
	if l.Building() {
		t.Error("still building after Tick")
	}
}

func TestSetStyleMarksDirty(t *testing.T) {
	h := newFakeHost(400, 300)
	l := newTestLayout(h)
	l.BindRedrawFunc(func() { l.Label("x", "x", Fill) })
	l.Tick()

	l.SetStyle(20, 2)
	if !l.Dirty() {
		t.Fatal("SetStyle did not mark the layout dirty")
	}
	l.Tick()
	if lh, m := l.Style(); lh != 20 || m != 2 {
		t.Errorf("Style() = %v, %v; want 20, 2", lh, m)
	}
	if got := h.attached[h.find(KindLabel, "x")]; got.Height != 18 {
		t.Errorf("control height = %v, want 18", got.Height)
	}
}

func TestRunFrameWithoutCallback(t *testing.T) {
	h := newFakeHost(400, 300)
	l := newTestLayout(h)
	l.RunFrame()
	if got := l.Stats(); got.Frame != 1 || got.Emitted != 0 {
		t.Errorf("Stats() = %v", got)
	}
}
