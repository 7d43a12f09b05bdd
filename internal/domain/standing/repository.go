package standing

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

type Repository interface {
	ListBySeason(ctx context.Context, season int, phase string, leagueCode league.Code) ([]Record, error)
}
