package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	leaguemock "github.com/riskibarqy/courtside/internal/mocks/domain/league"
	schedulemock "github.com/riskibarqy/courtside/internal/mocks/domain/schedule"
	standingmock "github.com/riskibarqy/courtside/internal/mocks/domain/standing"
	"github.com/stretchr/testify/mock"
)

var testEuroleague = league.League{Code: league.Euroleague, Name: "Euroleague", Slug: "international-euroleague", IsDefault: true}

func sameContext(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func scoredGame(round int, date, clock, home, away, code string) schedule.Game {
	homeScore, awayScore := 81, 77
	return schedule.Game{
		Round:        round,
		Date:         date,
		Time:         clock,
		HomeTeamCode: home,
		AwayTeamCode: away,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		IsPlayed:     true,
		GameCode:     code,
	}
}

func openGame(round int, date, clock, home, away string) schedule.Game {
	return schedule.Game{Round: round, Date: date, Time: clock, HomeTeamCode: home, AwayTeamCode: away}
}

func TestScheduleService_ListRounds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	gameRepo := schedulemock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)

	games := []schedule.Game{
		scoredGame(1, "2025-10-01", "18:00:00", "MAD", "ULK", "1"),
		openGame(2, "2025-10-08", "18:00:00", "MAD", "PAN"),
		openGame(3, "2025-10-15", "18:00:00", "ULK", "PAN"),
	}

	leagueRepo.On("GetByCode", sameContext(ctx), league.Euroleague).Return(testEuroleague, true, nil).Once()
	gameRepo.On("ListGames", sameContext(ctx), 2025, league.Euroleague).Return(games, nil).Once()

	service := NewScheduleService(leagueRepo, gameRepo, standingRepo, ScheduleConfig{CurrentSeason: 2025}, nil)
	got, err := service.ListRounds(ctx, "international-euroleague", 2025)
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	if len(got.Rounds) != 3 {
		t.Fatalf("unexpected rounds: got=%d want=3", len(got.Rounds))
	}
	if got.DefaultRound != 2 {
		t.Fatalf("unexpected default round: got=%d want=2", got.DefaultRound)
	}
}

func TestScheduleService_GetRound_OrdersGamesAndAttachesRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	gameRepo := schedulemock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)

	games := []schedule.Game{
		openGame(1, "2024-10-01", "20:00:00", "PAN", "OLY"),
		openGame(1, "2024-10-01", "18:00:00", "MAD", "ULK"),
		openGame(1, "2024-10-02", schedule.PlaceholderTime, "BAR", "FEN"),
	}
	records := []standing.Record{
		{TeamCode: "MAD", Wins: 3, Losses: 0},
		{TeamCode: "ULK", Wins: 1, Losses: 2},
		{TeamCode: "ZAL", Wins: 2, Losses: 1},
	}

	leagueRepo.On("GetByCode", sameContext(ctx), league.Euroleague).Return(testEuroleague, true, nil).Once()
	gameRepo.On("ListGames", sameContext(ctx), 2024, league.Euroleague).Return(games, nil).Once()
	standingRepo.On("ListBySeason", sameContext(ctx), 2024, league.PhaseRegularSeason, league.Euroleague).Return(records, nil).Once()

	service := NewScheduleService(leagueRepo, gameRepo, standingRepo, ScheduleConfig{CurrentSeason: 2025}, nil)
	got, err := service.GetRound(ctx, GetRoundInput{League: "euroleague", Season: 2024, Round: 1, Timezone: "UTC"})
	if err != nil {
		t.Fatalf("get round: %v", err)
	}

	if len(got.Round.Segments) != 2 {
		t.Fatalf("unexpected segments: got=%d want=2", len(got.Round.Segments))
	}
	ordered := got.Round.Games()
	if ordered[0].Game.HomeTeamCode != "MAD" || ordered[1].Game.HomeTeamCode != "PAN" {
		t.Fatalf("unexpected order: %s, %s", ordered[0].Game.HomeTeamCode, ordered[1].Game.HomeTeamCode)
	}
	if ordered[2].Kickoff.Label() != schedule.UnscheduledLabel {
		t.Fatalf("unexpected label for placeholder time: %q", ordered[2].Kickoff.Label())
	}
	if got.Records["MAD"].Label() != "3-0" {
		t.Fatalf("unexpected MAD record: %s", got.Records["MAD"].Label())
	}
	if _, ok := got.Records["ZAL"]; ok {
		t.Fatalf("records must only cover teams in unplayed games")
	}
}

func TestScheduleService_GetRound_StandingsFailureIsRecovered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	gameRepo := schedulemock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)

	leagueRepo.On("GetByCode", sameContext(ctx), league.Eurocup).Return(league.League{Code: league.Eurocup, Name: "Eurocup", Slug: "international-eurocup"}, true, nil).Once()
	gameRepo.On("ListGames", sameContext(ctx), 2025, league.Eurocup).Return([]schedule.Game{openGame(4, "2025-11-01", "19:00:00", "VAL", "HAP")}, nil).Once()
	standingRepo.On("ListBySeason", sameContext(ctx), 2025, league.PhaseRegularSeason, league.Eurocup).Return(nil, errors.New("db down")).Once()

	service := NewScheduleService(leagueRepo, gameRepo, standingRepo, ScheduleConfig{CurrentSeason: 2025}, nil)
	got, err := service.GetRound(ctx, GetRoundInput{League: "eurocup", Season: 2025, Round: 4})
	if err != nil {
		t.Fatalf("get round: %v", err)
	}
	if got.Round.Len() != 1 {
		t.Fatalf("unexpected game count: got=%d want=1", got.Round.Len())
	}
	if len(got.Records) != 0 {
		t.Fatalf("expected no records after standings failure, got=%d", len(got.Records))
	}
	if got.Location != time.UTC {
		t.Fatalf("expected default location, got=%s", got.Location)
	}
}

func TestScheduleService_GetRound_InvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewScheduleService(
		leaguemock.NewRepository(t),
		schedulemock.NewRepository(t),
		standingmock.NewRepository(t),
		ScheduleConfig{CurrentSeason: 2025},
		nil,
	)

	tests := []GetRoundInput{
		{League: "euroleague", Season: 0, Round: 1},
		{League: "euroleague", Season: 2025, Round: 0},
		{League: "euroleague", Season: 2025, Round: 1, Timezone: "Mars/Olympus"},
		{League: "", Season: 2025, Round: 1},
	}
	for _, input := range tests {
		if _, err := service.GetRound(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestScheduleService_ListRounds_LeagueNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("GetByCode", sameContext(ctx), league.Eurocup).Return(league.League{}, false, nil).Once()

	service := NewScheduleService(leagueRepo, schedulemock.NewRepository(t), standingmock.NewRepository(t), ScheduleConfig{}, nil)
	if _, err := service.ListRounds(ctx, "eurocup", 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
