package retained

import (
	"testing"

	"github.com/agiangrant/imlayout"
)

func newTestToolkit(t *testing.T, width, height float64) *Toolkit {
	t.Helper()
	tk, err := NewToolkit(width, height)
	if err != nil {
		t.Fatalf("NewToolkit() error = %v", err)
	}
	return tk
}

func TestWindowAddRemove(t *testing.T) {
	tk := newTestToolkit(t, 400, 300)
	win := tk.Window()

	a := tk.NewControl(imlayout.KindButton).(*Widget)
	b := tk.NewControl(imlayout.KindLabel).(*Widget)

	win.Add(a)
	win.Add(b)
	win.Add(a)
	if got := len(win.Children()); got != 2 {
		t.Fatalf("children = %d, want 2", got)
	}
	if !a.Attached() {
		t.Error("a not attached")
	}

	a.Focus()
	win.Remove(a)
	win.Remove(a)
	if a.Attached() || len(win.Children()) != 1 {
		t.Error("a still attached after Remove")
	}
	if win.Focused() != nil {
		t.Error("removing the focused widget kept focus")
	}

	want := WindowStats{Adds: 2, Removes: 1}
	if got := win.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	win.ResetStats()
	if win.Stats() != (WindowStats{}) {
		t.Error("ResetStats did not zero the counters")
	}
}

func TestWindowPlaceAndFind(t *testing.T) {
	tk := newTestToolkit(t, 400, 300)
	win := tk.Window()

	w := tk.NewControl(imlayout.KindLabel).(*Widget)
	w.SetText("hello")
	win.Add(w)
	r := imlayout.Rect{X: 4, Y: 40, Width: 100, Height: 28}
	win.Place(w, r)

	if w.Bounds() != r {
		t.Errorf("Bounds() = %v, want %v", w.Bounds(), r)
	}
	if got := win.FindText(imlayout.KindLabel, "hello"); got != w {
		t.Errorf("FindText() = %v, want %v", got, w)
	}
	if got := win.FindText(imlayout.KindButton, "hello"); got != nil {
		t.Errorf("FindText() matched the wrong kind: %v", got)
	}
}

func TestWindowRejectsForeignControls(t *testing.T) {
	tk := newTestToolkit(t, 400, 300)
	other := newTestToolkit(t, 400, 300)
	w := other.NewControl(imlayout.KindButton)

	defer func() {
		if recover() == nil {
			t.Error("Add accepted a widget from another toolkit")
		}
	}()
	tk.Window().Add(w)
}

func TestFocusCallbackFiresOnChange(t *testing.T) {
	tk := newTestToolkit(t, 400, 300)
	win := tk.Window()

	a := tk.NewControl(imlayout.KindTextField).(*Widget)
	b := tk.NewControl(imlayout.KindTextField).(*Widget)
	win.Add(a)
	win.Add(b)

	fired := 0
	a.OnFocus(func() { fired++ })

	a.Focus()
	a.Focus()
	b.Focus()
	a.Focus()
	if fired != 2 {
		t.Errorf("focus callback fired %d times, want 2", fired)
	}

	detached := tk.NewControl(imlayout.KindButton).(*Widget)
	detached.Focus()
	if win.Focused() == detached {
		t.Error("a detached widget took focus")
	}
}

func TestWindowRenderPass(t *testing.T) {
	tk := newTestToolkit(t, 400, 300)
	win := tk.Window()

	calls := 0
	win.OnRenderPass(func() { calls++ })
	win.OnRenderPass(func() { calls++ })
	win.RenderPass()

	if calls != 2 {
		t.Errorf("render pass callbacks ran %d times, want 2", calls)
	}
	if win.Stats().Passes != 1 {
		t.Errorf("Passes = %d, want 1", win.Stats().Passes)
	}
}

func TestToolkitConstructedCounts(t *testing.T) {
	tk := newTestToolkit(t, 400, 300)
	tk.NewControl(imlayout.KindButton)
	tk.NewControl(imlayout.KindButton)
	tk.NewControl(imlayout.KindSlider)

	if got := tk.Constructed(imlayout.KindButton); got != 2 {
		t.Errorf("Constructed(button) = %d, want 2", got)
	}
	if got := tk.TotalConstructed(); got != 3 {
		t.Errorf("TotalConstructed() = %d, want 3", got)
	}
}
