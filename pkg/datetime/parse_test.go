package datetime

import "testing"

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
		wantErr  bool
	}{
		{name: "no offset", date: "2026-01", months: 0, expected: "2026-01"},
		{name: "forward within year", date: "2026-01", months: 5, expected: "2026-06"},
		{name: "forward across year boundary", date: "2026-11", months: 3, expected: "2027-02"},
		{name: "backward", date: "2026-01", months: -1, expected: "2025-12"},
		{name: "invalid date", date: "January 2026", months: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("OffsetDate(%q) succeeded, expected error", tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("OffsetDate(%q) unexpected error: %v", tt.date, err)
			}
			if result != tt.expected {
				t.Errorf("OffsetDate(%q, %d) = %q, expected %q", tt.date, tt.months, result, tt.expected)
			}
		})
	}
}
