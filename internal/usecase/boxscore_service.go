package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
)

type GetBoxScoreInput struct {
	League   string
	Season   int
	GameCode string
	TeamCode string
}

// BoxScoreView carries every row of a game and the laid-out rows of the active team.
type BoxScoreView struct {
	League     league.League
	Season     int
	GameCode   string
	Teams      []string
	ActiveTeam string
	Rows       []boxscore.Row
}

type BoxScoreService struct {
	leagueRepo league.Repository
	boxRepo    boxscore.Repository
}

func NewBoxScoreService(leagueRepo league.Repository, boxRepo boxscore.Repository) *BoxScoreService {
	return &BoxScoreService{
		leagueRepo: leagueRepo,
		boxRepo:    boxRepo,
	}
}

func (s *BoxScoreService) GetBoxScore(ctx context.Context, input GetBoxScoreInput) (BoxScoreView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxScoreService.GetBoxScore")
	defer span.End()

	gameCode := strings.TrimSpace(input.GameCode)
	if gameCode == "" {
		return BoxScoreView{}, fmt.Errorf("%w: game code is required", ErrInvalidInput)
	}
	if err := validateSeason(input.Season); err != nil {
		return BoxScoreView{}, err
	}
	lg, err := resolveLeague(ctx, s.leagueRepo, input.League)
	if err != nil {
		return BoxScoreView{}, err
	}

	rows, err := s.boxRepo.ListRowsByGame(ctx, input.Season, gameCode, lg.Code)
	if err != nil {
		return BoxScoreView{}, fmt.Errorf("list game log rows: %w", err)
	}
	teams := boxscore.Teams(rows)
	if len(teams) == 0 {
		return BoxScoreView{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameCode)
	}

	active := normalizeTeamCode(input.TeamCode)
	if active == "" {
		active = teams[0]
	}
	if !containsString(teams, active) {
		return BoxScoreView{}, fmt.Errorf("%w: team %s did not play game %s", ErrInvalidInput, active, gameCode)
	}

	return BoxScoreView{
		League:     lg,
		Season:     input.Season,
		GameCode:   gameCode,
		Teams:      teams,
		ActiveTeam: active,
		Rows:       boxscore.Layout(rows, active),
	}, nil
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
