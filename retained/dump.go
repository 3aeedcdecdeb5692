package retained

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/agiangrant/imlayout"
)

// DumpOptions controls Dump output.
type DumpOptions struct {
	// Color wraps widget kinds in ANSI colors.
	Color bool
	// Elide shortens text that does not fit its widget.
	Elide bool
}

var kindColors = map[imlayout.WidgetKind]string{
	imlayout.KindButton:    "\x1b[36m", // cyan
	imlayout.KindLabel:     "\x1b[37m", // white
	imlayout.KindTextBlock: "\x1b[90m", // gray
	imlayout.KindTextField: "\x1b[33m", // yellow
	imlayout.KindSlider:    "\x1b[35m", // magenta
}

const colorReset = "\x1b[0m"

// Dump writes the window state and its attached widgets, top to bottom and
// left to right, one per line.
func (t *Toolkit) Dump(out io.Writer, opts DumpOptions) error {
	win := t.window
	bw := bufio.NewWriter(out)

	fmt.Fprintf(bw, "viewport %.0fx%.0f scroll=%.0f content=%.0fx%.0f widgets=%d\n",
		win.width, win.height, win.scrollY, win.contentW, win.contentH, len(win.children))

	children := win.Children()
	sort.SliceStable(children, func(i, j int) bool {
		a, b := children[i].bounds, children[j].bounds
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for _, w := range children {
		kind := fmt.Sprintf("%-10s", w.kind)
		if opts.Color {
			kind = kindColors[w.kind] + kind + colorReset
		}
		focus := " "
		if w.Focused() {
			focus = "*"
		}
		b := w.bounds
		fmt.Fprintf(bw, "%s%s x=%-4.0f y=%-6.0f w=%-4.0f h=%-3.0f %s\n",
			focus, kind, b.X, b.Y, b.Width, b.Height, t.describe(w, opts))
	}
	return bw.Flush()
}

func (t *Toolkit) describe(w *Widget, opts DumpOptions) string {
	if w.kind == imlayout.KindSlider {
		return fmt.Sprintf("%d [%d..%d]", w.value, w.min, w.max)
	}
	text := w.text
	if opts.Elide {
		text = t.metrics.Elide(text, w.bounds.Width-2*controlPadding)
	}
	return fmt.Sprintf("%q", text)
}
