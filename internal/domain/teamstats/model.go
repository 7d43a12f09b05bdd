package teamstats

// AdvancedStats holds a team's per-phase advanced metrics and their league ranks.
// A nil value or rank means the source did not provide it.
type AdvancedStats struct {
	TeamCode string
	TeamName string
	Season   int
	Phase    string
	Games    int

	Pace            *float64
	RankPace        *int
	EfficiencyO     *float64
	RankEfficiencyO *int
	EfficiencyD     *float64
	RankEfficiencyD *int
	NetRating       *float64
	RankNetRating   *int

	EFGPctO      *float64
	RankEFGPctO  *int
	EFGPctD      *float64
	RankEFGPctD  *int
	TORatioO     *float64
	RankTORatioO *int
	TORatioD     *float64
	RankTORatioD *int
	ORebPctO     *float64
	RankORebPctO *int
	ORebPctD     *float64
	RankORebPctD *int
	FTRateO      *float64
	RankFTRateO  *int
	FTRateD      *float64
	RankFTRateD  *int
}

// Side is the end of the floor a metric describes.
type Side string

const (
	SideNone    Side = ""
	SideOffense Side = "offense"
	SideDefense Side = "defense"
)

// RankEntry is a statistic paired with its league-wide rank (1 is best).
type RankEntry struct {
	Value *float64
	Rank  *int
}

// Metric describes one comparable row of the preview.
type Metric struct {
	Key      string
	Label    string
	Side     Side
	Decimals int
	entry    func(AdvancedStats) RankEntry
}

// Entry extracts the metric from a team's advanced stats.
func (m Metric) Entry(stats AdvancedStats) RankEntry {
	if m.entry == nil {
		return RankEntry{}
	}
	return m.entry(stats)
}

// Metrics lists the preview rows in display order.
var Metrics = []Metric{
	{Key: "pace", Label: "Pace", Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.Pace, s.RankPace} }},
	{Key: "efficiency_o", Label: "Offensive Efficiency", Side: SideOffense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.EfficiencyO, s.RankEfficiencyO} }},
	{Key: "efficiency_d", Label: "Defensive Efficiency", Side: SideDefense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.EfficiencyD, s.RankEfficiencyD} }},
	{Key: "net_rating", Label: "Net Rating", Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.NetRating, s.RankNetRating} }},
	{Key: "efgperc_o", Label: "eFG%", Side: SideOffense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.EFGPctO, s.RankEFGPctO} }},
	{Key: "efgperc_d", Label: "eFG%", Side: SideDefense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.EFGPctD, s.RankEFGPctD} }},
	{Key: "toratio_o", Label: "TO Ratio", Side: SideOffense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.TORatioO, s.RankTORatioO} }},
	{Key: "toratio_d", Label: "TO Ratio", Side: SideDefense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.TORatioD, s.RankTORatioD} }},
	{Key: "orebperc_o", Label: "OREB%", Side: SideOffense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.ORebPctO, s.RankORebPctO} }},
	{Key: "orebperc_d", Label: "OREB%", Side: SideDefense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.ORebPctD, s.RankORebPctD} }},
	{Key: "ftrate_o", Label: "FT Rate", Side: SideOffense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.FTRateO, s.RankFTRateO} }},
	{Key: "ftrate_d", Label: "FT Rate", Side: SideDefense, Decimals: 1, entry: func(s AdvancedStats) RankEntry { return RankEntry{s.FTRateD, s.RankFTRateD} }},
}
