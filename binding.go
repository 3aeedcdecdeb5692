package imlayout

// content is the displayed state of a widget, one variant per kind. The
// variants are comparable so a cached value can be checked against a new
// one with ==, which gates host property writes.
type content interface {
	kind() WidgetKind
	write(c Control)
}

type buttonContent struct{ label string }

type labelContent struct {
	text  string
	block bool
}

type fieldContent struct{ text string }

type sliderContent struct{ value, min, max int }

func (buttonContent) kind() WidgetKind { return KindButton }
func (fieldContent) kind() WidgetKind  { return KindTextField }
func (sliderContent) kind() WidgetKind { return KindSlider }

func (b labelContent) kind() WidgetKind {
	if b.block {
		return KindTextBlock
	}
	return KindLabel
}

func (b buttonContent) write(c Control) { c.SetText(b.label) }
func (b labelContent) write(c Control)  { c.SetText(b.text) }
func (b fieldContent) write(c Control)  { c.SetText(b.text) }

func (b sliderContent) write(c Control) {
	c.SetRange(b.min, b.max)
	c.SetValue(b.value)
}

// handlers holds the callbacks a registry entry currently dispatches to.
// They are replaced on every reuse and dropped on retirement.
type handlers struct {
	onClick  func()
	onEdit   func(text string)
	onAccept func()
	onChange func(value int)
}
