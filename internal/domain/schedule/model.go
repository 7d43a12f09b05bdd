package schedule

import (
	"fmt"
	"strings"
)

// Game is one fixture of a round as delivered by the data source.
type Game struct {
	Season       int
	Phase        string
	Round        int
	Date         string
	Time         string
	GameTime     string
	HomeTeam     string
	HomeTeamCode string
	HomeTeamLogo string
	AwayTeam     string
	AwayTeamCode string
	AwayTeamLogo string
	HomeScore    *int
	AwayScore    *int
	IsPlayed     bool
	GameCode     string
}

// MatchupKey identifies a game without a code (round, home, away).
type MatchupKey struct {
	Round    int
	HomeCode string
	AwayCode string
}

func (k MatchupKey) String() string {
	return fmt.Sprintf("%d:%s:%s", k.Round, k.HomeCode, k.AwayCode)
}

func (k MatchupKey) IsZero() bool {
	return k.Round == 0 && k.HomeCode == "" && k.AwayCode == ""
}

func (g Game) Matchup() MatchupKey {
	return MatchupKey{Round: g.Round, HomeCode: g.HomeTeamCode, AwayCode: g.AwayTeamCode}
}

// HasBoxScore reports whether box-score rows can be retrieved for the game.
func (g Game) HasBoxScore() bool {
	return g.IsPlayed && strings.TrimSpace(g.GameCode) != ""
}

// Validate checks the record invariants: a played game carries both scores.
func (g Game) Validate() error {
	if g.Round <= 0 {
		return fmt.Errorf("round must be positive, got %d", g.Round)
	}
	if strings.TrimSpace(g.HomeTeamCode) == "" || strings.TrimSpace(g.AwayTeamCode) == "" {
		return fmt.Errorf("home and away team codes are required")
	}
	if g.IsPlayed && (g.HomeScore == nil || g.AwayScore == nil) {
		return fmt.Errorf("played game %s is missing scores", g.Matchup())
	}
	return nil
}

// CalendarDay returns the YYYY-MM-DD part of the game date.
func (g Game) CalendarDay() string {
	day, _, _ := strings.Cut(strings.TrimSpace(g.Date), "T")
	return day
}

// ScheduledGame is a game paired with its resolved kickoff.
type ScheduledGame struct {
	Game    Game
	Kickoff Kickoff
}

// DateSegment is a maximal run of consecutive games sharing a calendar day.
type DateSegment struct {
	Day   string
	Games []ScheduledGame
}

// Round is the ordered schedule of one round.
type Round struct {
	Number   int
	Segments []DateSegment
}

// Games flattens the segments back into resolved-instant order.
func (r Round) Games() []ScheduledGame {
	out := make([]ScheduledGame, 0, r.Len())
	for _, segment := range r.Segments {
		out = append(out, segment.Games...)
	}
	return out
}

func (r Round) Len() int {
	total := 0
	for _, segment := range r.Segments {
		total += len(segment.Games)
	}
	return total
}
