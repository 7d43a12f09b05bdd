package roster

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

// Repository exposes player aggregate reads. An empty phase means every phase.
type Repository interface {
	ListByTeam(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) ([]Entry, error)
}
