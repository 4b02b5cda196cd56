// Package chart lays out a series of records as a compact text bar chart.
//
// Rendering is a pure pipeline: Select picks the window of records that fits
// the height budget, NewScale derives a single integer divisor for that
// window, RenderRow turns each record into bars, and Format joins the rows
// into text lines. Nothing in this package performs I/O or keeps state
// between calls.
package chart

import (
	"fmt"
	"strings"
)

// View selects which end of a series is kept when it does not fit.
type View int

const (
	// ViewBottom keeps the last records of the series.
	ViewBottom View = iota
	// ViewTop keeps the first records of the series.
	ViewTop
)

func (v View) String() string {
	switch v {
	case ViewTop:
		return "top"
	case ViewBottom:
		return "bottom"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView converts "top" or "bottom" (case-insensitive) to a View.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom":
		return ViewBottom, nil
	case "top":
		return ViewTop, nil
	default:
		return ViewBottom, fmt.Errorf("unknown view %q (want top or bottom)", s)
	}
}

// DefaultMaxHeight is the row and bar-length budget used when none is configured.
const DefaultMaxHeight = 16

// Glyphs used for bars unless overridden.
const (
	DefaultPrimaryGlyph    = '█'
	DefaultComparisonGlyph = '░'
)

// Options controls a single render.
type Options struct {
	// MaxHeight bounds both the number of rows and the length of the longest bar.
	MaxHeight uint16
	View      View

	PrimaryGlyph    rune
	ComparisonGlyph rune

	// LabelWidth truncates labels to this many display cells. Zero disables truncation.
	LabelWidth int
	// GroupDigits renders values with thousands separators.
	GroupDigits bool
}

// DefaultOptions returns the options used by the CLI without a config file.
func DefaultOptions() Options {
	return Options{
		MaxHeight:       DefaultMaxHeight,
		View:            ViewBottom,
		PrimaryGlyph:    DefaultPrimaryGlyph,
		ComparisonGlyph: DefaultComparisonGlyph,
		LabelWidth:      24,
	}
}

func (o Options) glyphs() (rune, rune) {
	p, c := o.PrimaryGlyph, o.ComparisonGlyph
	if p == 0 {
		p = DefaultPrimaryGlyph
	}
	if c == 0 {
		c = DefaultComparisonGlyph
	}
	return p, c
}
