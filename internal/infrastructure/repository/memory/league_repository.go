package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[league.Code]league.League
	orders []league.Code
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[league.Code]league.League, len(leagues))
	orders := make([]league.Code, 0, len(leagues))

	for _, l := range leagues {
		if _, ok := items[l.Code]; !ok {
			orders = append(orders, l.Code)
		}
		items[l.Code] = l
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, code := range r.orders {
		out = append(out, r.items[code])
	}

	return out, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code league.Code) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[code]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}
