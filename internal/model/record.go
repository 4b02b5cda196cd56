// Package model defines the record types charted by relchart.
package model

// Record is one parsed input row. Records are never mutated after parsing.
type Record struct {
	Value         uint64
	Comparison    uint64
	HasComparison bool
	Label         string // empty when the row carried no label
}

// Series is an ordered sequence of records. Order is input line order and
// forms the domain axis of the chart.
type Series []Record

// HasComparison reports whether the series was parsed in comparison mode.
func (s Series) HasComparison() bool {
	return len(s) > 0 && s[0].HasComparison
}

// MaxValue returns the largest primary or comparison value in the series.
func (s Series) MaxValue() uint64 {
	var peak uint64
	for _, r := range s {
		if r.Value > peak {
			peak = r.Value
		}
		if r.HasComparison && r.Comparison > peak {
			peak = r.Comparison
		}
	}
	return peak
}
