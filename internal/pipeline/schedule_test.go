package pipeline

import (
	"testing"
	"time"
)

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		date      string
		timeOfDay string
		wantErrs  []string
	}{
		{"valid future slot", "2026-09-15", "14:00", nil},
		{"valid today", "2026-08-30", "17:00", nil},
		{"missing date", "", "14:00", []string{"date"}},
		{"missing time", "2026-09-15", "", []string{"time"}},
		{"both missing", "", "", []string{"date", "time"}},
		{"past date", "2026-08-29", "14:00", []string{"date"}},
		{"malformed date", "15/09/2026", "14:00", []string{"date"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateSchedule(tc.date, tc.timeOfDay, now)
			if len(errs) != len(tc.wantErrs) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tc.wantErrs))
			}
			for _, field := range tc.wantErrs {
				if errs[field] == "" {
					t.Errorf("expected an error for %q, got %v", field, errs)
				}
			}
		})
	}
}
