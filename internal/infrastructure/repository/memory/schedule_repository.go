package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu    sync.RWMutex
	games map[seasonKey][]schedule.Game
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{games: make(map[seasonKey][]schedule.Game)}
}

// Add appends games under their own season.
func (r *ScheduleRepository) Add(leagueCode league.Code, games ...schedule.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, game := range games {
		key := seasonKey{league: leagueCode, season: game.Season}
		r.games[key] = append(r.games[key], game)
	}
}

func (r *ScheduleRepository) ListGames(_ context.Context, season int, leagueCode league.Code) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.games[seasonKey{league: leagueCode, season: season}]
	out := make([]schedule.Game, len(items))
	copy(out, items)
	return out, nil
}
