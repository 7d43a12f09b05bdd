package schedule

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

// Repository exposes schedule read operations.
type Repository interface {
	ListGames(ctx context.Context, season int, leagueCode league.Code) ([]Game, error)
}
