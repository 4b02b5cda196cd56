package chart

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/theirongolddev/relchart/internal/model"
)

// Row is one rendered record. Bars are plain glyph runs; colouring is applied
// later by a Painter.
type Row struct {
	Bar    string
	Height int

	HasComparison    bool
	ComparisonBar    string
	ComparisonHeight int

	Value      uint64
	Comparison uint64
	// ValueText is the unscaled value (and comparison, if any) as displayed.
	ValueText string
	Label     string
}

// Worse reports whether the comparison value exceeds the primary value.
func (r Row) Worse() bool {
	return r.HasComparison && r.Comparison > r.Value
}

// RenderRow draws one record against the shared scale.
func RenderRow(rec model.Record, scale Scale, opts Options) Row {
	primary, comparison := opts.glyphs()

	row := Row{
		Height: scale.Height(rec.Value),
		Value:  rec.Value,
		Label:  rec.Label,
	}
	row.Bar = strings.Repeat(string(primary), row.Height)
	row.ValueText = formatValue(rec.Value, opts.GroupDigits)

	if rec.HasComparison {
		row.HasComparison = true
		row.Comparison = rec.Comparison
		row.ComparisonHeight = scale.Height(rec.Comparison)
		row.ComparisonBar = strings.Repeat(string(comparison), row.ComparisonHeight)
		row.ValueText += "/" + formatValue(rec.Comparison, opts.GroupDigits)
	}

	if opts.LabelWidth > 0 && runewidth.StringWidth(row.Label) > opts.LabelWidth {
		row.Label = runewidth.Truncate(row.Label, opts.LabelWidth, "…")
	}
	return row
}

func formatValue(v uint64, group bool) string {
	if group {
		return humanize.Comma(int64(v)) //nolint:gosec // values are parsed as 32-bit
	}
	return strconv.FormatUint(v, 10)
}
