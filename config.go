package imlayout

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config configures a Layout.
type Config struct {
	Style   StyleConfig   `toml:"style" yaml:"style"`
	Culling CullingConfig `toml:"culling" yaml:"culling"`
	Pool    PoolConfig    `toml:"pool" yaml:"pool"`
	Debug   DebugConfig   `toml:"debug" yaml:"debug"`

	// Logger receives warnings and frame logs. Nil discards them.
	Logger *log.Logger `toml:"-" yaml:"-"`
}

// StyleConfig sets the flow-layout metrics.
type StyleConfig struct {
	// LineHeight is the height of every layout line in pixels.
	LineHeight float64 `toml:"line_height" yaml:"line_height"`
	// Margin is the gap between widgets and around the content area.
	Margin float64 `toml:"margin" yaml:"margin"`
}

// CullingConfig controls viewport culling.
type CullingConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	// MarginLines extends the viewport by this many line heights above and
	// below before culling.
	MarginLines float64 `toml:"margin_lines" yaml:"margin_lines"`
}

// PoolConfig bounds the per-kind control pools.
type PoolConfig struct {
	// Capacity is the number of retired controls kept per widget kind.
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// DebugConfig enables developer checks and logging.
type DebugConfig struct {
	// DetectCollisions panics when two widgets share an identity key in one
	// frame instead of logging and skipping the duplicate.
	DetectCollisions bool `toml:"detect_collisions" yaml:"detect_collisions"`
	// LogFrames logs the stats of every finished frame.
	LogFrames bool `toml:"log_frames" yaml:"log_frames"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Style: StyleConfig{
			LineHeight: 32,
			Margin:     4,
		},
		Culling: CullingConfig{
			Enabled:     true,
			MarginLines: 2,
		},
		Pool: PoolConfig{
			Capacity: 32,
		},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Style.LineHeight <= 0:
		return fmt.Errorf("style.line_height must be positive, got %v", c.Style.LineHeight)
	case c.Style.Margin < 0:
		return fmt.Errorf("style.margin must not be negative, got %v", c.Style.Margin)
	case c.Culling.MarginLines < 0:
		return fmt.Errorf("culling.margin_lines must not be negative, got %v", c.Culling.MarginLines)
	case c.Pool.Capacity < 0:
		return fmt.Errorf("pool.capacity must not be negative, got %d", c.Pool.Capacity)
	}
	return nil
}

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from a file extension. Anything that is
// not .yaml or .yml is treated as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LoadConfig reads a config file on top of DefaultConfig. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := ParseConfig(data, FormatForPath(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data on top of DefaultConfig and validates it.
func ParseConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unknown config format %q", format)
	}
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalConfig encodes cfg in the given format.
func MarshalConfig(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard, "", 0)
}
