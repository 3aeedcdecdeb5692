package retained

import (
	"container/list"
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the size of the toolkit's text in pixels.
const DefaultFontSize = 14

// controlPadding is the space a control keeps above and below its text.
const controlPadding = 5

// TextMetrics measures text set in Go Regular at a fixed size.
type TextMetrics struct {
	size  float64
	face  font.Face
	cache *measureCache
}

// NewTextMetrics loads Go Regular at the given pixel size.
func NewTextMetrics(size float64) (*TextMetrics, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return &TextMetrics{
		size:  size,
		face:  face,
		cache: newMeasureCache(4096),
	}, nil
}

// Size returns the font size in pixels.
func (m *TextMetrics) Size() float64 { return m.size }

// LineHeight returns the font's recommended line height in pixels.
func (m *TextMetrics) LineHeight() float64 {
	return toPixels(m.face.Metrics().Height)
}

// SuggestedLineHeight returns a layout line height that fits one line of
// text plus control padding and the given layout margin.
func (m *TextMetrics) SuggestedLineHeight(margin float64) float64 {
	return math.Ceil(m.LineHeight()) + 2*controlPadding + margin
}

// Measure returns the advance width of s in pixels.
func (m *TextMetrics) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	if w, ok := m.cache.get(s); ok {
		return w
	}
	w := toPixels(font.MeasureString(m.face, s))
	m.cache.put(s, w)
	return w
}

// Elide shortens s with a trailing ellipsis until it fits width.
func (m *TextMetrics) Elide(s string, width float64) string {
	if m.Measure(s) <= width {
		return s
	}
	const ellipsis = "…"
	for s != "" {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		if m.Measure(s+ellipsis) <= width {
			return s + ellipsis
		}
	}
	return ""
}

func toPixels(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// ============================================================================
// Measurement Cache
// ============================================================================

// measureCache is an LRU cache of text widths. Dumps and elision measure the
// same strings every frame; the cache keeps that from re-running glyph
// lookups.
type measureCache struct {
	maxSize int
	entries map[string]*list.Element
	lru     *list.List // Front = most recently used
}

type measureEntry struct {
	key   string
	width float64
}

func newMeasureCache(maxSize int) *measureCache {
	return &measureCache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *measureCache) get(key string) (float64, bool) {
	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*measureEntry).width, true
	}
	return 0, false
}

func (c *measureCache) put(key string, width float64) {
	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*measureEntry).width = width
		return
	}
	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*measureEntry).key)
	}
	c.entries[key] = c.lru.PushFront(&measureEntry{key: key, width: width})
}

func (c *measureCache) len() int {
	return c.lru.Len()
}
