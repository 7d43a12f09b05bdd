package teamstats

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

type Repository interface {
	GetAdvancedStats(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) (AdvancedStats, bool, error)
}
