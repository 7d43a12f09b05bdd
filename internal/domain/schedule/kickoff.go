package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	// PlaceholderTime marks a kickoff that has not been announced.
	PlaceholderTime = "00:00:00"
	// UnscheduledLabel is rendered in place of an empty display time.
	UnscheduledLabel = "TBD"

	dateLayout    = "2006-01-02"
	displayLayout = "15:04"
	zoneLayout    = "MST"
)

// Kickoff is the resolved start of a game.
// Instant orders games; Display and Zone are rendered in the viewer's location.
type Kickoff struct {
	Instant time.Time
	Display string
	Zone    string
	Timed   bool
}

// Label returns the display time or UnscheduledLabel when no real time is known.
func (k Kickoff) Label() string {
	if k.Display == "" {
		return UnscheduledLabel
	}
	return k.Display
}

// ResolveKickoff converts the raw date and time fields of a game into a kickoff.
// Source clock times are read as UTC. The primary time wins unless it is empty or
// PlaceholderTime, then the secondary time is tried, then midnight UTC of the date
// is used for ordering with a blank display.
//
// On a parse failure the returned kickoff still orders by date alone (zero time when
// the date itself is unreadable) and carries a blank display.
func ResolveKickoff(date, primary, secondary string, loc *time.Location) (Kickoff, error) {
	if loc == nil {
		loc = time.UTC
	}

	day, _, _ := strings.Cut(strings.TrimSpace(date), "T")
	midnight, err := time.ParseInLocation(dateLayout, day, time.UTC)
	if err != nil {
		return Kickoff{}, fmt.Errorf("parse game date %q: %w", date, err)
	}

	clock := usableClock(primary)
	if clock == "" {
		clock = usableClock(secondary)
	}
	if clock == "" {
		return Kickoff{
			Instant: midnight,
			Zone:    midnight.In(loc).Format(zoneLayout),
		}, nil
	}

	hour, minute, err := parseClock(clock)
	if err != nil {
		return Kickoff{Instant: midnight}, fmt.Errorf("parse kickoff time %q on %s: %w", clock, day, err)
	}

	instant := midnight.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	local := instant.In(loc)
	return Kickoff{
		Instant: instant,
		Display: local.Format(displayLayout),
		Zone:    local.Format(zoneLayout),
		Timed:   true,
	}, nil
}

func usableClock(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || value == PlaceholderTime {
		return ""
	}
	return value
}

// parseClock reads HH:MM or HH:MM:SS; seconds are ignored.
func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, fmt.Errorf("expected HH:MM[:SS]")
	}

	parsed, err := time.Parse("15:04", parts[0]+":"+parts[1])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 3 {
		if _, err := time.Parse("05", parts[2]); err != nil {
			return 0, 0, err
		}
	}
	return parsed.Hour(), parsed.Minute(), nil
}
