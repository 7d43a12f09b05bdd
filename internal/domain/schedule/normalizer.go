package schedule

import (
	"errors"
	"sort"
	"time"
)

// FallbackRound is selected for the current season when every round is already played.
const FallbackRound = 3

// AvailableRounds returns the distinct positive round numbers in ascending order.
func AvailableRounds(games []Game) []int {
	seen := make(map[int]struct{}, len(games))
	rounds := make([]int, 0)
	for _, game := range games {
		if game.Round <= 0 {
			continue
		}
		if _, ok := seen[game.Round]; ok {
			continue
		}
		seen[game.Round] = struct{}{}
		rounds = append(rounds, game.Round)
	}
	sort.Ints(rounds)
	return rounds
}

// GroupRound orders the games of one round by resolved kickoff and splits them into
// date segments. Games with equal instants keep their input order.
//
// Kickoff failures do not drop games; they are joined into the returned error so the
// caller can log them while still rendering the round.
func GroupRound(games []Game, round int, loc *time.Location) (Round, error) {
	scheduled := make([]ScheduledGame, 0)
	var errs []error
	for _, game := range games {
		if game.Round != round {
			continue
		}

		kickoff, err := ResolveKickoff(game.Date, game.Time, game.GameTime, loc)
		if err != nil {
			errs = append(errs, err)
		}
		scheduled = append(scheduled, ScheduledGame{Game: game, Kickoff: kickoff})
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].Kickoff.Instant.Before(scheduled[j].Kickoff.Instant)
	})

	return Round{Number: round, Segments: Segment(scheduled)}, errors.Join(errs...)
}

// Segment partitions ordered games into maximal runs sharing a calendar day.
func Segment(ordered []ScheduledGame) []DateSegment {
	segments := make([]DateSegment, 0)
	for _, item := range ordered {
		day := item.Game.CalendarDay()
		last := len(segments) - 1
		if last < 0 || segments[last].Day != day {
			segments = append(segments, DateSegment{Day: day})
			last++
		}
		segments[last].Games = append(segments[last].Games, item)
	}
	return segments
}

// DefaultRound picks the round shown when a season is first opened.
// The current season opens on the first round with an unplayed game, or FallbackRound
// when none is left. Past seasons open on their first round. No games means round 1.
func DefaultRound(games []Game, season, currentSeason int) int {
	rounds := AvailableRounds(games)
	if len(rounds) == 0 {
		return 1
	}
	if season != currentSeason {
		return rounds[0]
	}

	pending := make(map[int]bool, len(rounds))
	for _, game := range games {
		if !game.IsPlayed {
			pending[game.Round] = true
		}
	}
	for _, round := range rounds {
		if pending[round] {
			return round
		}
	}
	return FallbackRound
}

// NextRound returns the round after current, or false at the last round.
func NextRound(rounds []int, current int) (int, bool) {
	idx := indexOf(rounds, current)
	if idx < 0 || idx+1 >= len(rounds) {
		return current, false
	}
	return rounds[idx+1], true
}

// PreviousRound returns the round before current, or false at the first round.
func PreviousRound(rounds []int, current int) (int, bool) {
	idx := indexOf(rounds, current)
	if idx <= 0 {
		return current, false
	}
	return rounds[idx-1], true
}

// HasRound reports whether round is one of rounds.
func HasRound(rounds []int, round int) bool {
	return indexOf(rounds, round) >= 0
}

func indexOf(rounds []int, round int) int {
	for i, value := range rounds {
		if value == round {
			return i
		}
	}
	return -1
}
