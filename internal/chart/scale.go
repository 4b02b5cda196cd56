package chart

import "github.com/theirongolddev/relchart/internal/model"

// Scale maps raw magnitudes onto a bounded number of display cells.
type Scale struct {
	MaxValue   uint64
	MaxHeight  int
	UnitPerRow uint64
}

// NewScale computes the scale for the given window of records. The largest
// primary or comparison value determines a single divisor shared by every bar.
func NewScale(records model.Series, maxHeight int) Scale {
	s := Scale{
		MaxValue:   records.MaxValue(),
		MaxHeight:  maxHeight,
		UnitPerRow: 1,
	}
	if maxHeight <= 0 || s.MaxValue == 0 {
		return s
	}

	h := uint64(maxHeight)
	unit := s.MaxValue / h
	if s.MaxValue%h != 0 {
		unit++
	}
	if unit > 1 {
		s.UnitPerRow = unit
	}
	return s
}

// Height returns the number of cells used to draw value: value/unit rounded
// half up and clamped to [0, MaxHeight]. Any nonzero value gets at least one
// cell so small values stay visible next to large ones.
func (s Scale) Height(value uint64) int {
	if value == 0 || s.MaxValue == 0 || s.MaxHeight <= 0 {
		return 0
	}

	q, r := value/s.UnitPerRow, value%s.UnitPerRow
	if r >= s.UnitPerRow-r {
		q++
	}

	switch {
	case q < 1:
		return 1
	case q > uint64(s.MaxHeight):
		return s.MaxHeight
	default:
		return int(q)
	}
}
