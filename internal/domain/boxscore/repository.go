package boxscore

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

// Repository exposes game log reads.
type Repository interface {
	ListRowsByGame(ctx context.Context, season int, gameCode string, leagueCode league.Code) ([]Row, error)
}
