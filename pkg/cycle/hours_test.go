package cycle

import "testing"

func TestDerivedHours(t *testing.T) {
	sixty := 60
	zero := 0

	tests := []struct {
		name  string
		start string
		end   string
		brk   *int
		want  float64
	}{
		{"plain shift", "09:00", "17:00", nil, 8},
		{"with break", "09:00", "17:00", &sixty, 7},
		{"explicit zero break", "09:00", "17:00", &zero, 8},
		{"half hours", "08:15", "12:45", nil, 4.5},
		{"overnight", "22:00", "06:00", nil, 8},
		{"break exceeds span", "09:00", "09:30", &sixty, 0},
		{"missing start", "", "17:00", nil, 0},
		{"missing end", "09:00", "", nil, 0},
		{"malformed start", "nine", "17:00", nil, 0},
		{"malformed end", "09:00", "25:99", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DerivedHours(tc.start, tc.end, tc.brk)
			if !almostEqual(got, tc.want) {
				t.Fatalf("DerivedHours(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
