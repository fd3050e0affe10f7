package common

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside", 5, 0, 99, 5},
		{"below", -3, 0, 99, 0},
		{"above", 120, 0, 99, 99},
		{"edge", 99, 0, 99, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Fatalf("Clamp float = %v", got)
	}
}
