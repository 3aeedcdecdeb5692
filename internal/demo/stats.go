package demo

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/agiangrant/imlayout"
)

// RuntimeStats shows garbage collector and heap statistics, with a slider
// for the GC target percentage and a button that forces a collection.
type RuntimeStats struct {
	layout    *imlayout.Layout
	gcPercent int
	// readStats is replaceable so tests can feed fixed numbers.
	readStats func(*runtime.MemStats)
	setGC     func(int) int
}

// NewRuntimeStats creates the panel with the GC percentage at 100.
func NewRuntimeStats(l *imlayout.Layout) *RuntimeStats {
	return &RuntimeStats{
		layout:    l,
		gcPercent: 100,
		readStats: runtime.ReadMemStats,
		setGC:     debug.SetGCPercent,
	}
}

// GCPercent returns the GC target the slider last applied.
func (a *RuntimeStats) GCPercent() int { return a.gcPercent }

// Draw emits the panel.
func (a *RuntimeStats) Draw() {
	var ms runtime.MemStats
	a.readStats(&ms)

	l := a.layout
	l.Label("heading", "GC Statistics:", imlayout.Fill)
	l.Label("stat", fmt.Sprintf("  Collections: %d", ms.NumGC), imlayout.Fill)
	l.Label("stat", fmt.Sprintf("  Heap in use: %d KB", ms.HeapInuse/1024), imlayout.Fill)
	l.Label("stat", fmt.Sprintf("  Total allocated: %d KB", ms.TotalAlloc/1024), imlayout.Fill)
	l.Label("stat", fmt.Sprintf("  Goroutines: %d", runtime.NumGoroutine()), imlayout.Fill)

	l.DragInt("gc-percent", "GC percent", a.gcPercent, 10, 400, imlayout.RelativeWidth(1, false), func(v int) {
		a.gcPercent = v
		a.setGC(v)
	})
	l.Button("collect", "Run GC", func() {
		runtime.GC()
	}, imlayout.FixedWidth(120, true))
	l.TextBlock("hint", "Drag the slider to change the collector target.", imlayout.Fill)
}
