package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/standing"
)

type StandingRepository struct {
	mu      sync.RWMutex
	records map[seasonKey][]standing.Record
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{records: make(map[seasonKey][]standing.Record)}
}

func (r *StandingRepository) Add(leagueCode league.Code, records ...standing.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		key := seasonKey{league: leagueCode, season: record.Season}
		r.records[key] = append(r.records[key], record)
	}
}

func (r *StandingRepository) ListBySeason(_ context.Context, season int, phase string, leagueCode league.Code) ([]standing.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Record, 0)
	for _, record := range r.records[seasonKey{league: leagueCode, season: season}] {
		if phase != "" && record.Phase != phase {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}
