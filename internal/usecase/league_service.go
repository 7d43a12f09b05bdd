package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

// GetLeague accepts a league code or navigation slug.
func (s *LeagueService) GetLeague(ctx context.Context, raw string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	return resolveLeague(ctx, s.leagueRepo, raw)
}

func resolveLeague(ctx context.Context, repo league.Repository, raw string) (league.League, error) {
	code, err := league.Parse(raw)
	if err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, exists, err := repo.GetByCode(ctx, code)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, code)
	}

	return item, nil
}

func validateSeason(season int) error {
	if season <= 0 {
		return fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	return nil
}

func normalizeTeamCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
