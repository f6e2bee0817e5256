package models

import "testing"

func TestTripDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"both dates missing", "", "", 7},
		{"unparseable start", "soon", "2026-03-10", 7},
		{"unparseable end", "2026-03-01", "eventually", 7},
		{"end before start", "2026-03-10", "2026-03-01", 7},
		{"same day floors at three", "2026-03-01", "2026-03-01", 3},
		{"two days floors at three", "2026-03-01", "2026-03-02", 3},
		{"full range counts inclusive days", "2026-03-01", "2026-03-10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := TravelPreferences{StartDate: tt.start, EndDate: tt.end}
			if got := p.TripDurationDays(); got != tt.want {
				t.Errorf("TripDurationDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizedGroupSize(t *testing.T) {
	if got := (TravelPreferences{GroupSize: 0}).NormalizedGroupSize(); got != 1 {
		t.Errorf("zero group size normalized to %d, want 1", got)
	}
	if got := (TravelPreferences{GroupSize: -3}).NormalizedGroupSize(); got != 1 {
		t.Errorf("negative group size normalized to %d, want 1", got)
	}
	if got := (TravelPreferences{GroupSize: 6}).NormalizedGroupSize(); got != 6 {
		t.Errorf("valid group size changed to %d, want 6", got)
	}
}
