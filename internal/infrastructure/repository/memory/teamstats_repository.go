package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

type teamPhaseKey struct {
	league   league.Code
	season   int
	phase    string
	teamCode string
}

type TeamStatsRepository struct {
	mu    sync.RWMutex
	items map[teamPhaseKey]teamstats.AdvancedStats
}

func NewTeamStatsRepository() *TeamStatsRepository {
	return &TeamStatsRepository{items: make(map[teamPhaseKey]teamstats.AdvancedStats)}
}

func (r *TeamStatsRepository) Add(leagueCode league.Code, stats ...teamstats.AdvancedStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range stats {
		r.items[teamPhaseKey{league: leagueCode, season: item.Season, phase: item.Phase, teamCode: item.TeamCode}] = item
	}
}

func (r *TeamStatsRepository) GetAdvancedStats(_ context.Context, teamCode string, season int, phase string, leagueCode league.Code) (teamstats.AdvancedStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamPhaseKey{league: leagueCode, season: season, phase: phase, teamCode: teamCode}]
	return item, ok, nil
}
