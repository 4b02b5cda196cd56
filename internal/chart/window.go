package chart

import "github.com/theirongolddev/relchart/internal/model"

// Window is the inclusive index range [Start, End] of the series that is
// rendered. An empty window has End < Start.
type Window struct {
	Start int
	End   int
}

// Len returns the number of records in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Apply returns the records covered by the window.
func (w Window) Apply(series model.Series) model.Series {
	if w.Len() == 0 {
		return nil
	}
	return series[w.Start : w.End+1]
}

// Select picks the contiguous run of records to display. A series that fits
// in maxHeight rows is shown whole; otherwise the first (ViewTop) or last
// (ViewBottom) maxHeight records are kept.
func Select(n, maxHeight int, view View) Window {
	if n <= 0 || maxHeight <= 0 {
		return Window{Start: 0, End: -1}
	}
	if n <= maxHeight {
		return Window{Start: 0, End: n - 1}
	}

	switch view {
	case ViewTop:
		return Window{Start: 0, End: maxHeight - 1}
	default:
		return Window{Start: n - maxHeight, End: n - 1}
	}
}
