package schedule

import (
	"testing"
	"time"
)

func TestResolveKickoff(t *testing.T) {
	t.Parallel()

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	tests := []struct {
		name        string
		date        string
		primary     string
		secondary   string
		loc         *time.Location
		wantInstant time.Time
		wantDisplay string
		wantLabel   string
		wantTimed   bool
	}{
		{
			name:        "primary time read as utc",
			date:        "2024-10-01",
			primary:     "18:00:00",
			loc:         time.UTC,
			wantInstant: time.Date(2024, 10, 1, 18, 0, 0, 0, time.UTC),
			wantDisplay: "18:00",
			wantLabel:   "18:00",
			wantTimed:   true,
		},
		{
			name:        "placeholder falls back to secondary",
			date:        "2024-10-01",
			primary:     PlaceholderTime,
			secondary:   "20:45:00",
			loc:         time.UTC,
			wantInstant: time.Date(2024, 10, 1, 20, 45, 0, 0, time.UTC),
			wantDisplay: "20:45",
			wantLabel:   "20:45",
			wantTimed:   true,
		},
		{
			name:        "missing primary falls back to secondary",
			date:        "2024-10-01T00:00:00",
			secondary:   "19:30",
			loc:         time.UTC,
			wantInstant: time.Date(2024, 10, 1, 19, 30, 0, 0, time.UTC),
			wantDisplay: "19:30",
			wantLabel:   "19:30",
			wantTimed:   true,
		},
		{
			name:        "placeholder without fallback is unscheduled",
			date:        "2024-10-01",
			primary:     PlaceholderTime,
			loc:         time.UTC,
			wantInstant: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			wantDisplay: "",
			wantLabel:   UnscheduledLabel,
		},
		{
			name:        "display converted to viewer zone",
			date:        "2024-10-01",
			primary:     "18:00:00",
			loc:         tokyo,
			wantInstant: time.Date(2024, 10, 1, 18, 0, 0, 0, time.UTC),
			wantDisplay: "03:00",
			wantLabel:   "03:00",
			wantTimed:   true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveKickoff(tc.date, tc.primary, tc.secondary, tc.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Instant.Equal(tc.wantInstant) {
				t.Fatalf("unexpected instant: got=%s want=%s", got.Instant, tc.wantInstant)
			}
			if got.Display != tc.wantDisplay {
				t.Fatalf("unexpected display: got=%q want=%q", got.Display, tc.wantDisplay)
			}
			if got.Label() != tc.wantLabel {
				t.Fatalf("unexpected label: got=%q want=%q", got.Label(), tc.wantLabel)
			}
			if got.Timed != tc.wantTimed {
				t.Fatalf("unexpected timed flag: got=%v want=%v", got.Timed, tc.wantTimed)
			}
		})
	}
}

func TestResolveKickoffZoneLabel(t *testing.T) {
	t.Parallel()

	got, err := ResolveKickoff("2024-10-01", "18:00:00", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Zone != "UTC" {
		t.Fatalf("unexpected zone label: got=%q want=UTC", got.Zone)
	}
}

func TestResolveKickoffFailures(t *testing.T) {
	t.Parallel()

	got, err := ResolveKickoff("2024-10-01", "25:99:00", "", time.UTC)
	if err == nil {
		t.Fatalf("expected error for malformed time")
	}
	if got.Display != "" {
		t.Fatalf("expected blank display, got=%q", got.Display)
	}
	if !got.Instant.Equal(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date-only instant, got=%s", got.Instant)
	}

	got, err = ResolveKickoff("not-a-date", "18:00:00", "", time.UTC)
	if err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if !got.Instant.IsZero() {
		t.Fatalf("expected zero instant, got=%s", got.Instant)
	}
}
