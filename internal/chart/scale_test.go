package chart

import (
	"testing"

	"github.com/theirongolddev/relchart/internal/model"
)

func values(vs ...uint64) model.Series {
	s := make(model.Series, len(vs))
	for i, v := range vs {
		s[i] = model.Record{Value: v}
	}
	return s
}

func TestNewScale(t *testing.T) {
	tests := []struct {
		name      string
		records   model.Series
		maxHeight int
		wantMax   uint64
		wantUnit  uint64
	}{
		{"empty", nil, 16, 0, 1},
		{"all zero", values(0, 0, 0), 16, 0, 1},
		{"small range keeps 1:1", values(3, 5, 1), 16, 5, 1},
		{"max equals height", values(16, 2), 16, 16, 1},
		{"uneven division rounds unit up", values(4, 104, 889, 5517), 16, 5517, 345},
		{"even division", values(100, 10), 10, 100, 10},
		{"zero height", values(100), 0, 100, 1},
		{
			"comparison counts toward max",
			model.Series{{Value: 10, Comparison: 320, HasComparison: true}},
			16, 320, 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScale(tt.records, tt.maxHeight)
			if s.MaxValue != tt.wantMax {
				t.Errorf("MaxValue = %d, want %d", s.MaxValue, tt.wantMax)
			}
			if s.UnitPerRow != tt.wantUnit {
				t.Errorf("UnitPerRow = %d, want %d", s.UnitPerRow, tt.wantUnit)
			}
			if s.MaxHeight != tt.maxHeight {
				t.Errorf("MaxHeight = %d, want %d", s.MaxHeight, tt.maxHeight)
			}
		})
	}
}

func TestScaleHeight(t *testing.T) {
	tests := []struct {
		name    string
		records model.Series
		height  int
		value   uint64
		want    int
	}{
		{"zero value", values(0, 50), 16, 0, 0},
		{"all zero", values(0), 16, 0, 0},
		{"tallest fills budget", values(4, 5517), 16, 5517, 16},
		{"small value stays visible", values(4, 5517), 16, 4, 1},
		{"rounds half up", values(100), 10, 15, 2},
		{"rounds down below half", values(100), 10, 14, 1},
		{"one to one", values(7, 12), 16, 7, 7},
		{"zero height budget", values(5), 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScale(tt.records, tt.height)
			if got := s.Height(tt.value); got != tt.want {
				t.Errorf("Height(%d) = %d, want %d (unit %d)", tt.value, got, tt.want, s.UnitPerRow)
			}
		})
	}
}

func TestScaleHeightBounds(t *testing.T) {
	for _, height := range []int{1, 2, 3, 7, 16, 40} {
		for _, peak := range []uint64{1, 2, 15, 16, 17, 99, 1000, 4294967295} {
			s := NewScale(values(peak), height)
			for _, v := range []uint64{0, 1, 2, peak / 3, peak / 2, peak - 1, peak} {
				if v > peak {
					continue
				}
				got := s.Height(v)
				if got < 0 || got > height {
					t.Fatalf("height=%d peak=%d: Height(%d) = %d, outside [0, %d]", height, peak, v, got, height)
				}
				if v > 0 && got == 0 {
					t.Fatalf("height=%d peak=%d: nonzero value %d collapsed to 0", height, peak, v)
				}
			}
		}
	}
}
