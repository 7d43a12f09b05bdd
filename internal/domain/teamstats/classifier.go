package teamstats

import (
	"fmt"
	"math"
	"strconv"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

// Tier is the visual classification of a ranked statistic.
type Tier string

const (
	TierBest          Tier = "best"
	TierStrong        Tier = "strong"
	TierGood          Tier = "good"
	TierAboveAverage  Tier = "above_average"
	TierSlightlyAbove Tier = "slightly_above"
	TierNeutral       Tier = "neutral"
	TierSlightlyBelow Tier = "slightly_below"
	TierPoor          Tier = "poor"
	TierWeak          Tier = "weak"
	TierWorst         Tier = "worst"
	TierBelow         Tier = "below"
	// TierNone is the bordered, non-colored default.
	TierNone Tier = "none"
)

// NotAvailable is rendered for missing values and ranks.
const NotAvailable = "N/A"

// RankTier maps a league rank to a tier on its own, without an opponent.
// Rank special cases are checked first, then percentile bands, then the bottom three.
func RankTier(rank, total int) Tier {
	if rank <= 0 {
		return TierNone
	}
	if total <= 0 {
		total = league.DefaultSize
	}

	switch rank {
	case 1:
		return TierBest
	case 2:
		return TierStrong
	case 3:
		return TierGood
	}

	percentile := 1 - float64(rank-1)/float64(max(1, total-1))
	switch {
	case percentile >= 0.75:
		return TierAboveAverage
	case percentile >= 0.60:
		return TierSlightlyAbove
	case percentile >= 0.40:
		return TierNeutral
	case percentile >= 0.25:
		return TierSlightlyBelow
	}

	switch rank {
	case total - 2:
		return TierPoor
	case total - 1:
		return TierWeak
	case total:
		return TierWorst
	}
	return TierBelow
}

// Classify colors only the better of two ranked sides. The subject gets its
// RankTier when its rank is positive and strictly better (lower) than the
// opponent's; every other case, including a missing opponent rank, is TierNone.
func Classify(subjectRank, opponentRank, total int) Tier {
	if subjectRank <= 0 || opponentRank <= 0 || subjectRank >= opponentRank {
		return TierNone
	}
	return RankTier(subjectRank, total)
}

// TeamValue is one side of a compared metric, ready for display.
type TeamValue struct {
	Value       *float64
	Rank        *int
	Tier        Tier
	Display     string
	RankDisplay string
}

// Comparison pairs the home and away values of one metric.
type Comparison struct {
	Metric Metric
	Home   TeamValue
	Away   TeamValue
}

// Compare classifies every preview metric for a matchup.
func Compare(home, away AdvancedStats, total int) []Comparison {
	out := make([]Comparison, 0, len(Metrics))
	for _, metric := range Metrics {
		homeEntry := metric.Entry(home)
		awayEntry := metric.Entry(away)
		homeRank, awayRank := rankOrZero(homeEntry.Rank), rankOrZero(awayEntry.Rank)

		out = append(out, Comparison{
			Metric: metric,
			Home:   teamValue(homeEntry, metric.Decimals, Classify(homeRank, awayRank, total)),
			Away:   teamValue(awayEntry, metric.Decimals, Classify(awayRank, homeRank, total)),
		})
	}
	return out
}

func teamValue(entry RankEntry, decimals int, tier Tier) TeamValue {
	return TeamValue{
		Value:       entry.Value,
		Rank:        entry.Rank,
		Tier:        tier,
		Display:     FormatValue(entry.Value, decimals),
		RankDisplay: FormatRank(entry.Rank),
	}
}

func rankOrZero(rank *int) int {
	if rank == nil {
		return 0
	}
	return *rank
}

// FormatValue renders a metric with fixed decimals, or NotAvailable.
func FormatValue(value *float64, decimals int) string {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return NotAvailable
	}
	return strconv.FormatFloat(*value, 'f', decimals, 64)
}

// FormatRank renders a rank as #N, or NotAvailable.
func FormatRank(rank *int) string {
	if rank == nil || *rank <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("#%d", *rank)
}
