package chart

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Painter decorates the parts of a rendered line. Implementations must not
// change the display width of what they are given.
type Painter interface {
	Primary(index int, bar string) string
	Comparison(bar string, worse bool) string
	Value(text string) string
	Label(text string) string
}

// Plain is a Painter that leaves text untouched.
type Plain struct{}

func (Plain) Primary(_ int, bar string) string { return bar }

func (Plain) Comparison(bar string, _ bool) string { return bar }

func (Plain) Value(text string) string { return text }

func (Plain) Label(text string) string { return text }

// Format joins rendered rows into text lines, one per row, in row order.
// Bars are padded to the longest bar of the set and values are right-aligned
// so that columns line up.
func Format(rows []Row, p Painter) []string {
	if len(rows) == 0 {
		return nil
	}

	barW, valueW := 0, 0
	for _, r := range rows {
		barW = max(barW, runewidth.StringWidth(r.Bar))
		if r.HasComparison {
			barW = max(barW, runewidth.StringWidth(r.ComparisonBar))
		}
		valueW = max(valueW, len(r.ValueText))
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		var b strings.Builder
		if barW > 0 {
			b.WriteString(p.Primary(i, r.Bar))
			b.WriteString(pad(barW - runewidth.StringWidth(r.Bar)))
			b.WriteByte(' ')
			if r.HasComparison {
				b.WriteString(p.Comparison(r.ComparisonBar, r.Worse()))
				b.WriteString(pad(barW - runewidth.StringWidth(r.ComparisonBar)))
				b.WriteByte(' ')
			}
		}
		b.WriteString(pad(valueW - len(r.ValueText)))
		b.WriteString(p.Value(r.ValueText))
		if r.Label != "" {
			b.WriteByte(' ')
			b.WriteString(p.Label(r.Label))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
