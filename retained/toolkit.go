package retained

import "github.com/agiangrant/imlayout"

// Toolkit owns one window and constructs its widgets.
type Toolkit struct {
	window      *Window
	metrics     *TextMetrics
	constructed map[imlayout.WidgetKind]int
}

// NewToolkit creates a toolkit with a window of the given visible size.
func NewToolkit(width, height float64) (*Toolkit, error) {
	metrics, err := NewTextMetrics(DefaultFontSize)
	if err != nil {
		return nil, err
	}
	return &Toolkit{
		window:      newWindow(width, height),
		metrics:     metrics,
		constructed: make(map[imlayout.WidgetKind]int),
	}, nil
}

// Surface returns the window as the engine's render surface.
func (t *Toolkit) Surface() imlayout.Surface { return t.window }

// NewControl constructs a detached widget of the given kind.
func (t *Toolkit) NewControl(kind imlayout.WidgetKind) imlayout.Control {
	t.constructed[kind]++
	return newWidget(kind, t.window)
}

// Window returns the toolkit's window.
func (t *Toolkit) Window() *Window { return t.window }

// Metrics returns the toolkit's text metrics.
func (t *Toolkit) Metrics() *TextMetrics { return t.metrics }

// Constructed returns how many widgets of a kind were ever built.
func (t *Toolkit) Constructed(kind imlayout.WidgetKind) int {
	return t.constructed[kind]
}

// TotalConstructed returns how many widgets were ever built.
func (t *Toolkit) TotalConstructed() int {
	n := 0
	for _, c := range t.constructed {
		n += c
	}
	return n
}
