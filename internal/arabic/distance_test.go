package arabic

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "بسم", "بسم", 0},
		{"empty_both", "", "", 0},
		{"empty_a", "", "الله", 4},
		{"substitution", "بسم", "بصم", 1},
		{"insertion", "قال", "قاال", 1},
		{"deletion", "الرحيم", "الرحم", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizedDistance(t *testing.T) {
	if got := NormalizedDistance("", ""); got != 0 {
		t.Fatalf("expected 0 for empty strings, got %v", got)
	}
	if got := NormalizedDistance("بسم", "بصم"); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("expected 1/3, got %v", got)
	}
	if got := NormalizedDistance("ab", "xyz"); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}
