package standing

import "fmt"

// Record is a cumulative standings row for one team.
type Record struct {
	TeamCode string
	TeamName string
	Season   int
	Phase    string
	Position int
	Wins     int
	Losses   int
}

// Played is the number of decided games.
func (r Record) Played() int {
	return r.Wins + r.Losses
}

// Label renders the record as W-L.
func (r Record) Label() string {
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// Index keys records by team code; the first record per team wins.
func Index(records []Record) map[string]Record {
	out := make(map[string]Record, len(records))
	for _, record := range records {
		if _, ok := out[record.TeamCode]; ok {
			continue
		}
		out[record.TeamCode] = record
	}
	return out
}
