package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "rounds up", input: 1037.035, expected: 1037.04},
		{name: "rounds down", input: 952.381, expected: 952.38},
		{name: "negative value", input: -1199.101, expected: -1199.10},
		{name: "already exact", input: 500.00, expected: 500.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Round(tt.input); result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.004) {
		t.Error("IsZero(0.004) = false, expected true within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(-1037.03, -1037.035, 0.01) {
		t.Error("WithinTolerance() = false, expected true")
	}
	if WithinTolerance(-1037.03, -1038.00, 0.01) {
		t.Error("WithinTolerance() = true, expected false")
	}
}
