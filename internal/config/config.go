// Package config loads relchart settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/relchart/internal/chart"
	"github.com/theirongolddev/relchart/internal/source"
	"github.com/theirongolddev/relchart/internal/theme"
)

// Config holds all relchart configuration.
type Config struct {
	Chart      ChartConfig      `toml:"chart"`
	Input      InputConfig      `toml:"input"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ChartConfig holds layout settings.
type ChartConfig struct {
	MaxHeight   int    `toml:"max_height"`
	View        string `toml:"view"`
	LabelWidth  int    `toml:"label_width"`
	GroupDigits bool   `toml:"group_digits"`
}

// InputConfig holds reader settings.
type InputConfig struct {
	MaxLines int `toml:"max_lines"`
}

// AppearanceConfig holds theme and glyph settings.
type AppearanceConfig struct {
	Theme           string `toml:"theme"`
	Color           string `toml:"color"`
	PrimaryGlyph    string `toml:"primary_glyph"`
	ComparisonGlyph string `toml:"comparison_glyph"`
}

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConfigError reports an invalid or conflicting setting. Flag names the
// command-line flag (or config key) at fault.
type ConfigError struct { //nolint:revive // config.ConfigError reads fine at call sites
	Flag   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Flag == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid --%s: %s", e.Flag, e.Reason)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	opts := chart.DefaultOptions()
	return Config{
		Chart: ChartConfig{
			MaxHeight:  int(opts.MaxHeight),
			View:       opts.View.String(),
			LabelWidth: opts.LabelWidth,
		},
		Input: InputConfig{
			MaxLines: source.DefaultMaxLines,
		},
		Appearance: AppearanceConfig{
			Theme:           "flexoki-dark",
			Color:           ColorAuto,
			PrimaryGlyph:    string(opts.PrimaryGlyph),
			ComparisonGlyph: string(opts.ComparisonGlyph),
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "relchart")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "relchart")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path, returning defaults if it doesn't exist.
// An empty path means Path().
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Exists returns true if a config file exists at path (or Path() when empty).
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}

// Options validates the chart settings and converts them to chart.Options.
func (c Config) Options() (chart.Options, error) {
	opts := chart.DefaultOptions()

	if c.Chart.MaxHeight < 0 || c.Chart.MaxHeight > 0xFFFF {
		return opts, &ConfigError{Flag: "max-height", Reason: fmt.Sprintf("%d is outside 0-65535", c.Chart.MaxHeight)}
	}
	opts.MaxHeight = uint16(c.Chart.MaxHeight) //nolint:gosec // range checked above

	view, err := chart.ParseView(c.Chart.View)
	if err != nil {
		return opts, &ConfigError{Flag: "view", Reason: err.Error()}
	}
	opts.View = view

	if c.Chart.LabelWidth < 0 {
		return opts, &ConfigError{Flag: "label-width", Reason: "must not be negative"}
	}
	opts.LabelWidth = c.Chart.LabelWidth
	opts.GroupDigits = c.Chart.GroupDigits

	if opts.PrimaryGlyph, err = glyph(c.Appearance.PrimaryGlyph); err != nil {
		return opts, &ConfigError{Flag: "primary-glyph", Reason: err.Error()}
	}
	if opts.ComparisonGlyph, err = glyph(c.Appearance.ComparisonGlyph); err != nil {
		return opts, &ConfigError{Flag: "comparison-glyph", Reason: err.Error()}
	}

	return opts, nil
}

// Validate checks the settings that do not feed chart.Options.
func (c Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	switch c.Appearance.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ConfigError{Flag: "color", Reason: fmt.Sprintf("unknown mode %q (want auto, always or never)", c.Appearance.Color)}
	}
	if _, ok := theme.Lookup(c.Appearance.Theme); !ok {
		return &ConfigError{Flag: "theme", Reason: fmt.Sprintf("unknown theme %q (want %s)", c.Appearance.Theme, strings.Join(theme.Names(), ", "))}
	}
	if c.Input.MaxLines < 0 {
		return &ConfigError{Flag: "max-lines", Reason: "must not be negative"}
	}
	return nil
}

func glyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
