package chart

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		maxHeight int
		view      View
		want      Window
		wantLen   int
	}{
		{"empty series", 0, 16, ViewBottom, Window{0, -1}, 0},
		{"single record", 1, 16, ViewBottom, Window{0, 0}, 1},
		{"fits", 5, 16, ViewTop, Window{0, 4}, 5},
		{"exactly fits", 16, 16, ViewBottom, Window{0, 15}, 16},
		{"bottom keeps tail", 100, 16, ViewBottom, Window{84, 99}, 16},
		{"top keeps head", 100, 16, ViewTop, Window{0, 15}, 16},
		{"zero height", 40, 0, ViewTop, Window{0, -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.n, tt.maxHeight, tt.view)
			if got != tt.want {
				t.Errorf("Select(%d, %d, %v) = %+v, want %+v", tt.n, tt.maxHeight, tt.view, got, tt.want)
			}
			if got.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got.Len(), tt.wantLen)
			}
		})
	}
}

func TestWindowApply(t *testing.T) {
	series := values(1, 2, 3, 4, 5)

	got := Window{Start: 1, End: 3}.Apply(series)
	if len(got) != 3 || got[0].Value != 2 || got[2].Value != 4 {
		t.Errorf("Apply = %+v, want values 2..4", got)
	}
	if got := (Window{Start: 0, End: -1}).Apply(series); got != nil {
		t.Errorf("empty window Apply = %+v, want nil", got)
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"top", ViewTop, false},
		{"Bottom", ViewBottom, false},
		{" top ", ViewTop, false},
		{"middle", ViewBottom, true},
		{"", ViewBottom, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseView(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseView(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseView(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
