package chart

import "github.com/theirongolddev/relchart/internal/model"

// Layout is the intermediate result of a render: which records were kept,
// the scale they were drawn at and the rows produced.
type Layout struct {
	Window Window
	Scale  Scale
	Rows   []Row
}

// Arrange selects the window, scales it and renders every row in series order.
func Arrange(series model.Series, opts Options) Layout {
	height := int(opts.MaxHeight)
	w := Select(len(series), height, opts.View)
	records := w.Apply(series)

	l := Layout{
		Window: w,
		Scale:  NewScale(records, height),
		Rows:   make([]Row, 0, len(records)),
	}
	for _, rec := range records {
		l.Rows = append(l.Rows, RenderRow(rec, l.Scale, opts))
	}
	return l
}

// Render returns the chart as plain text lines, one per displayed record,
// top to bottom in series order. An empty series or a zero height yields no
// lines.
func Render(series model.Series, opts Options) []string {
	return Format(Arrange(series, opts).Rows, Plain{})
}
