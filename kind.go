package imlayout

// WidgetKind identifies the type of host control backing a widget.
type WidgetKind uint8

const (
	KindButton WidgetKind = iota
	KindLabel
	KindTextBlock
	KindTextField
	KindSlider

	numKinds
)

// Kinds lists every widget kind in declaration order.
var Kinds = [...]WidgetKind{KindButton, KindLabel, KindTextBlock, KindTextField, KindSlider}

func (k WidgetKind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindLabel:
		return "label"
	case KindTextBlock:
		return "text_block"
	case KindTextField:
		return "text_field"
	case KindSlider:
		return "slider"
	default:
		return "unknown"
	}
}

// Focusable reports whether controls of this kind take keyboard focus.
func (k WidgetKind) Focusable() bool {
	return k == KindButton || k == KindTextField || k == KindSlider
}
