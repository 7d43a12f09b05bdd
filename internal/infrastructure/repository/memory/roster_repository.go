package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
)

type RosterRepository struct {
	mu      sync.RWMutex
	entries map[seasonKey][]roster.Entry
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{entries: make(map[seasonKey][]roster.Entry)}
}

func (r *RosterRepository) Add(leagueCode league.Code, entries ...roster.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		key := seasonKey{league: leagueCode, season: entry.Season}
		r.entries[key] = append(r.entries[key], entry)
	}
}

// ListByTeam filters by phase unless phase is empty.
func (r *RosterRepository) ListByTeam(_ context.Context, teamCode string, season int, phase string, leagueCode league.Code) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, entry := range r.entries[seasonKey{league: leagueCode, season: season}] {
		if entry.TeamCode != teamCode {
			continue
		}
		if phase != "" && entry.Phase != phase {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
