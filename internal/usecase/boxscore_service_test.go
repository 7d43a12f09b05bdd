package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	boxscoremock "github.com/riskibarqy/courtside/internal/mocks/domain/boxscore"
	leaguemock "github.com/riskibarqy/courtside/internal/mocks/domain/league"
)

func boxRow(team, player string, points int) boxscore.Row {
	row := boxscore.NewRow("41", team, player)
	row.Points = points
	return row
}

func TestBoxScoreService_GetBoxScore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	boxRepo := boxscoremock.NewRepository(t)

	rows := []boxscore.Row{
		boxRow("MAD", "Total", 85),
		boxRow("MAD", "Low Scorer", 4),
		boxRow("MAD", "Team", 0),
		boxRow("MAD", "High Scorer", 21),
		boxRow("ULK", "Away Scorer", 30),
	}

	leagueRepo.On("GetByCode", sameContext(ctx), league.Euroleague).Return(testEuroleague, true, nil).Twice()
	boxRepo.On("ListRowsByGame", sameContext(ctx), 2025, "41", league.Euroleague).Return(rows, nil).Twice()

	service := NewBoxScoreService(leagueRepo, boxRepo)
	got, err := service.GetBoxScore(ctx, GetBoxScoreInput{League: "euroleague", Season: 2025, GameCode: "41"})
	if err != nil {
		t.Fatalf("get box score: %v", err)
	}
	if got.ActiveTeam != "MAD" {
		t.Fatalf("unexpected default team: got=%s want=MAD", got.ActiveTeam)
	}
	want := []string{"High Scorer", "Low Scorer", "Team", "Total"}
	for i, name := range want {
		if got.Rows[i].Player != name {
			t.Fatalf("unexpected row at %d: got=%s want=%s", i, got.Rows[i].Player, name)
		}
	}

	got, err = service.GetBoxScore(ctx, GetBoxScoreInput{League: "euroleague", Season: 2025, GameCode: "41", TeamCode: "ulk"})
	if err != nil {
		t.Fatalf("get box score for away team: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0].Player != "Away Scorer" {
		t.Fatalf("unexpected away rows: %+v", got.Rows)
	}
}

func TestBoxScoreService_GetBoxScore_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	boxRepo := boxscoremock.NewRepository(t)

	leagueRepo.On("GetByCode", sameContext(ctx), league.Euroleague).Return(testEuroleague, true, nil).Twice()
	boxRepo.On("ListRowsByGame", sameContext(ctx), 2025, "missing", league.Euroleague).Return(nil, nil).Once()
	boxRepo.On("ListRowsByGame", sameContext(ctx), 2025, "41", league.Euroleague).Return([]boxscore.Row{boxRow("MAD", "A", 1)}, nil).Once()

	service := NewBoxScoreService(leagueRepo, boxRepo)
	if _, err := service.GetBoxScore(ctx, GetBoxScoreInput{League: "euroleague", Season: 2025}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing game code, got %v", err)
	}
	if _, err := service.GetBoxScore(ctx, GetBoxScoreInput{League: "euroleague", Season: 2025, GameCode: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetBoxScore(ctx, GetBoxScoreInput{League: "euroleague", Season: 2025, GameCode: "41", TeamCode: "PAN"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for foreign team, got %v", err)
	}
}
