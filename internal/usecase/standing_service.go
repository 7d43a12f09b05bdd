package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/standing"
)

type StandingService struct {
	leagueRepo   league.Repository
	standingRepo standing.Repository
}

func NewStandingService(leagueRepo league.Repository, standingRepo standing.Repository) *StandingService {
	return &StandingService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
	}
}

// List returns the regular season table ordered by position, then wins.
func (s *StandingService) List(ctx context.Context, leagueRaw string, season int) ([]standing.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.List")
	defer span.End()

	if err := validateSeason(season); err != nil {
		return nil, err
	}
	lg, err := resolveLeague(ctx, s.leagueRepo, leagueRaw)
	if err != nil {
		return nil, err
	}

	items, err := s.standingRepo.ListBySeason(ctx, season, league.PhaseRegularSeason, lg.Code)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Record, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		left, right := out[i], out[j]
		if left.Position > 0 && right.Position > 0 && left.Position != right.Position {
			return left.Position < right.Position
		}
		if left.Wins != right.Wins {
			return left.Wins > right.Wins
		}
		return left.Losses < right.Losses
	})

	return out, nil
}
