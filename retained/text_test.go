package retained

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTextMetrics(t *testing.T) {
	m, err := NewTextMetrics(DefaultFontSize)
	if err != nil {
		t.Fatalf("NewTextMetrics() error = %v", err)
	}

	if m.Measure("") != 0 {
		t.Error("empty string has a width")
	}
	short, long := m.Measure("abc"), m.Measure("abcdef")
	if short <= 0 || long <= short {
		t.Errorf("Measure(abc) = %v, Measure(abcdef) = %v", short, long)
	}
	if m.LineHeight() < DefaultFontSize {
		t.Errorf("LineHeight() = %v, want at least the font size", m.LineHeight())
	}

	lh := m.SuggestedLineHeight(4)
	if lh != float64(int(lh)) {
		t.Errorf("SuggestedLineHeight() = %v, want a whole number", lh)
	}
	if lh < m.LineHeight()+2*controlPadding+4 {
		t.Errorf("SuggestedLineHeight() = %v is too small", lh)
	}
}

func TestTextMetricsDefaultSize(t *testing.T) {
	m, err := NewTextMetrics(0)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != DefaultFontSize {
		t.Errorf("Size() = %v, want %v", m.Size(), DefaultFontSize)
	}
}

func TestElide(t *testing.T) {
	m, err := NewTextMetrics(DefaultFontSize)
	if err != nil {
		t.Fatal(err)
	}

	text := "internal/demo/filesearch.go"
	if got := m.Elide(text, 1000); got != text {
		t.Errorf("Elide() = %q, want text unchanged", got)
	}

	width := m.Measure(text) / 2
	got := m.Elide(text, width)
	if !strings.HasSuffix(got, "…") || !utf8.ValidString(got) {
		t.Errorf("Elide() = %q, want a valid string ending in an ellipsis", got)
	}
	if m.Measure(got) > width {
		t.Errorf("elided width %v exceeds %v", m.Measure(got), width)
	}

	if got := m.Elide(text, 0); got != "" {
		t.Errorf("Elide(width 0) = %q, want empty", got)
	}
}

func TestMeasureCacheEviction(t *testing.T) {
	c := newMeasureCache(2)
	c.put("a", 1)
	c.put("b", 2)
	c.get("a")
	c.put("c", 3)

	if _, ok := c.get("b"); ok {
		t.Error("least recently used entry was kept")
	}
	if w, ok := c.get("a"); !ok || w != 1 {
		t.Errorf("get(a) = %v, %v; want 1, true", w, ok)
	}
	if c.len() != 2 {
		t.Errorf("len() = %d, want 2", c.len())
	}
}

func BenchmarkMeasure(b *testing.B) {
	m, err := NewTextMetrics(DefaultFontSize)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		m.Measure("internal/demo/filesearch.go")
	}
}
