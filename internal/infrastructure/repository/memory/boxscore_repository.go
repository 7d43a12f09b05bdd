package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
)

type gameKey struct {
	league   league.Code
	season   int
	gameCode string
}

type BoxScoreRepository struct {
	mu   sync.RWMutex
	rows map[gameKey][]boxscore.Row
}

func NewBoxScoreRepository() *BoxScoreRepository {
	return &BoxScoreRepository{rows: make(map[gameKey][]boxscore.Row)}
}

func (r *BoxScoreRepository) Add(leagueCode league.Code, season int, rows ...boxscore.Row) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		key := gameKey{league: leagueCode, season: season, gameCode: row.GameCode}
		r.rows[key] = append(r.rows[key], row)
	}
}

func (r *BoxScoreRepository) ListRowsByGame(_ context.Context, season int, gameCode string, leagueCode league.Code) ([]boxscore.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.rows[gameKey{league: leagueCode, season: season, gameCode: gameCode}]
	out := make([]boxscore.Row, len(items))
	copy(out, items)
	return out, nil
}
