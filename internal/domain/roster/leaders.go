package roster

// Category is a statistic leaders are computed for.
type Category string

const (
	CategoryPoints            Category = "points"
	CategoryRebounds          Category = "rebounds"
	CategoryAssists           Category = "assists"
	CategoryThreePointersMade Category = "three_pointers_made"
)

// Categories lists leader categories in display order.
var Categories = []Category{
	CategoryPoints,
	CategoryRebounds,
	CategoryAssists,
	CategoryThreePointersMade,
}

// Field selects the category's value from an entry.
func (c Category) Field(entry Entry) LooseNumber {
	switch c {
	case CategoryPoints:
		return entry.Points
	case CategoryRebounds:
		return entry.TotalRebounds
	case CategoryAssists:
		return entry.Assists
	case CategoryThreePointersMade:
		return entry.ThreePointersMade
	default:
		return LooseNumber{}
	}
}

// Leader returns the entry with the highest coerced value for the category.
// The scan starts from the first entry and only a strictly greater value
// replaces the current leader, so ties keep the earliest entry.
func Leader(entries []Entry, category Category) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}

	best := entries[0]
	bestValue := category.Field(best).Float()
	for _, entry := range entries[1:] {
		value := category.Field(entry).Float()
		if value > bestValue {
			best, bestValue = entry, value
		}
	}
	return best, true
}

// CategoryLeader is the leader of one category, if any.
type CategoryLeader struct {
	Category Category
	Entry    Entry
	Value    float64
	Found    bool
}

// Leaders computes every category over the combined rosters of two teams.
func Leaders(home, away []Entry) []CategoryLeader {
	combined := make([]Entry, 0, len(home)+len(away))
	combined = append(combined, home...)
	combined = append(combined, away...)

	out := make([]CategoryLeader, 0, len(Categories))
	for _, category := range Categories {
		entry, ok := Leader(combined, category)
		leader := CategoryLeader{Category: category, Found: ok}
		if ok {
			leader.Entry = entry
			leader.Value = category.Field(entry).Float()
		}
		out = append(out, leader)
	}
	return out
}
