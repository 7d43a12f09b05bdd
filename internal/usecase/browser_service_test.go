package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/expansion"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/platform/cache"
)

type stubGameRepo struct {
	games []schedule.Game
	err   error
}

func (s *stubGameRepo) ListGames(context.Context, int, league.Code) ([]schedule.Game, error) {
	return s.games, s.err
}

type stubBoxRepo struct {
	mu    sync.Mutex
	rows  map[string][]boxscore.Row
	err   error
	calls int
}

func (s *stubBoxRepo) ListRowsByGame(_ context.Context, _ int, gameCode string, _ league.Code) ([]boxscore.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows[gameCode], nil
}

type stubTeamStatsRepo struct{}

func (stubTeamStatsRepo) GetAdvancedStats(_ context.Context, teamCode string, _ int, _ string, _ league.Code) (teamstats.AdvancedStats, bool, error) {
	return teamstats.AdvancedStats{TeamCode: teamCode, Pace: valuePtr(70)}, true, nil
}

type stubRosterRepo struct{}

func (stubRosterRepo) ListByTeam(_ context.Context, teamCode string, _ int, _ string, _ league.Code) ([]roster.Entry, error) {
	return []roster.Entry{{PlayerName: teamCode + " Star", TeamCode: teamCode, Points: roster.Number(15)}}, nil
}

type fixedIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *fixedIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return "session-" + string(rune('0'+g.next)), nil
}

// queueExecutor holds tasks until the test runs them.
type queueExecutor struct {
	mu    sync.Mutex
	tasks []func()
	err   error
}

func (e *queueExecutor) Submit(task func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return e.err
	}
	e.tasks = append(e.tasks, task)
	return nil
}

func (e *queueExecutor) run(t *testing.T, idx int) {
	t.Helper()
	e.mu.Lock()
	if idx >= len(e.tasks) {
		e.mu.Unlock()
		t.Fatalf("no task at %d, have %d", idx, len(e.tasks))
	}
	task := e.tasks[idx]
	e.mu.Unlock()
	task()
}

type inlineExecutor struct{}

func (inlineExecutor) Submit(task func()) error {
	task()
	return nil
}

func browserFixture() ([]schedule.Game, map[string][]boxscore.Row) {
	games := []schedule.Game{
		scoredGame(1, "2025-10-01", "18:00:00", "MAD", "ULK", "1"),
		scoredGame(1, "2025-10-01", "20:00:00", "PAN", "OLY", "2"),
		openGame(2, "2025-10-08", "18:00:00", "MAD", "PAN"),
		openGame(2, "2025-10-09", "19:00:00", "ULK", "OLY"),
		openGame(3, "2025-10-15", "18:00:00", "OLY", "MAD"),
	}
	rows := map[string][]boxscore.Row{
		"1": {
			boxRow("MAD", "Total", 90),
			boxRow("MAD", "Bench", 2),
			boxRow("MAD", "Starter", 20),
			boxRow("ULK", "Visitor", 25),
			boxRow("ULK", "Team", 0),
		},
		"2": {boxRow("PAN", "Green", 12)},
	}
	return games, rows
}

func newTestBrowserService(t *testing.T, executor Executor, gameRepo *stubGameRepo, boxRepo *stubBoxRepo) *BrowserService {
	t.Helper()

	leagues := &stubLeagueRepo{items: []league.League{testEuroleague}}
	standings := &stubStandingRepo{}
	preview := NewPreviewService(leagues, stubTeamStatsRepo{}, stubRosterRepo{}, standings, PreviewConfig{}, nil)
	return NewBrowserService(
		leagues,
		gameRepo,
		boxRepo,
		standings,
		preview,
		cache.NewStore(time.Minute),
		executor,
		&fixedIDGenerator{},
		BrowserConfig{CurrentSeason: 2025},
		nil,
	)
}

func TestBrowserService_Open_SelectsDefaultRound(t *testing.T) {
	t.Parallel()

	games, rows := browserFixture()
	service := newTestBrowserService(t, inlineExecutor{}, &stubGameRepo{games: games}, &stubBoxRepo{rows: rows})

	view, err := service.Open(context.Background(), OpenBrowserInput{League: "international-euroleague", Season: 2025})
	if err != nil {
		t.Fatalf("open browser: %v", err)
	}
	if view.Round.Number != 2 {
		t.Fatalf("unexpected default round: got=%d want=2", view.Round.Number)
	}
	if len(view.Round.Segments) != 2 {
		t.Fatalf("unexpected segments: got=%d want=2", len(view.Round.Segments))
	}
	if !view.HasPrevious || !view.HasNext {
		t.Fatalf("round 2 must allow both directions")
	}
	if view.Expansion.Kind != expansion.KindClosed {
		t.Fatalf("new session must start closed, got=%s", view.Expansion.Kind)
	}
}

func TestBrowserService_Open_ScheduleFailureIsRecovered(t *testing.T) {
	t.Parallel()

	service := newTestBrowserService(t, inlineExecutor{}, &stubGameRepo{err: errors.New("upstream down")}, &stubBoxRepo{})

	view, err := service.Open(context.Background(), OpenBrowserInput{League: "euroleague", Season: 2025})
	if err != nil {
		t.Fatalf("open browser: %v", err)
	}
	if len(view.Rounds) != 0 || view.Round.Number != 1 || view.Round.Len() != 0 {
		t.Fatalf("expected empty browser on round 1, got rounds=%v round=%d", view.Rounds, view.Round.Number)
	}
}

func TestBrowserService_ActivateGame_TogglesLog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	games, rows := browserFixture()
	boxRepo := &stubBoxRepo{rows: rows}
	service := newTestBrowserService(t, inlineExecutor{}, &stubGameRepo{games: games}, boxRepo)

	opened, err := service.Open(ctx, OpenBrowserInput{League: "euroleague", Season: 2025})
	if err != nil {
		t.Fatalf("open browser: %v", err)
	}
	if _, err := service.SelectRound(ctx, opened.ID, 1); err != nil {
		t.Fatalf("select round: %v", err)
	}

	input := ActivateGameInput{Round: 1, HomeTeamCode: "MAD", AwayTeamCode: "ULK"}
	if _, err := service.ActivateGame(ctx, opened.ID, input); err != nil {
		t.Fatalf("activate game: %v", err)
	}
	view, err := service.Await(ctx, opened.ID)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if view.Expansion.Kind != expansion.KindLog || view.Loading {
		t.Fatalf("unexpected expansion: kind=%s loading=%v", view.Expansion.Kind, view.Loading)
	}
	if view.Log == nil || view.Log.ActiveTeam != "MAD" {
		t.Fatalf("expected log defaulting to home team, got=%+v", view.Log)
	}
	want := []string{"Starter", "Bench", "Total"}
	for i, name := range want {
		if view.Log.Rows[i].Player != name {
			t.Fatalf("unexpected log row at %d: got=%s want=%s", i, view.Log.Rows[i].Player, name)
		}
	}

	view, err = service.SetLogTeam(ctx, opened.ID, "ulk")
	if err != nil {
		t.Fatalf("set log team: %v", err)
	}
	if len(view.Log.Rows) != 2 || view.Log.Rows[0].Player != "Visitor" {
		t.Fatalf("unexpected away rows: %+v", view.Log.Rows)
	}
	if boxRepo.calls != 1 {
		t.Fatalf("switching team must not refetch, calls=%d", boxRepo.calls)
	}

	view, err = service.ActivateGame(ctx, opened.ID, input)
	if err != nil {
		t.Fatalf("toggle game: %v", err)
	}
	if view.Expansion.Kind != expansion.KindClosed || view.Log != nil || view.Preview != nil {
		t.Fatalf("second activation must close and clear, got kind=%s", view.Expansion.Kind)
	}
}

func TestBrowserService_ActivateGame_ReplacesPanel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	games, rows := browserFixture()
	service := newTestBrowserService(t, inlineExecutor{}, &stubGameRepo{games: games}, &stubBoxRepo{rows: rows})

	opened, _ := service.Open(ctx, OpenBrowserInput{League: "euroleague", Season: 2025})
	if _, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 2, HomeTeamCode: "MAD", AwayTeamCode: "PAN"}); err != nil {
		t.Fatalf("activate first preview: %v", err)
	}
	view, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 2, HomeTeamCode: "ULK", AwayTeamCode: "OLY"})
	if err != nil {
		t.Fatalf("activate second preview: %v", err)
	}
	view, _ = service.Await(ctx, view.ID)

	if view.Expansion.Kind != expansion.KindPreview || view.Expansion.Matchup.HomeCode != "ULK" {
		t.Fatalf("unexpected expansion: %+v", view.Expansion)
	}
	if view.Log != nil {
		t.Fatalf("log payload must be empty while preview is open")
	}
	if view.Preview == nil || view.Preview.Home.TeamCode != "ULK" {
		t.Fatalf("unexpected preview payload: %+v", view.Preview)
	}
	if !view.Preview.Leaders[0].Found || view.Preview.Leaders[0].Entry.PlayerName != "ULK Star" {
		t.Fatalf("unexpected leader: %+v", view.Preview.Leaders[0])
	}
}

func TestBrowserService_DiscardsStaleFetch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	games, rows := browserFixture()
	executor := &queueExecutor{}
	service := newTestBrowserService(t, executor, &stubGameRepo{games: games}, &stubBoxRepo{rows: rows})

	opened, _ := service.Open(ctx, OpenBrowserInput{League: "euroleague", Season: 2025})
	if _, err := service.SelectRound(ctx, opened.ID, 1); err != nil {
		t.Fatalf("select round: %v", err)
	}

	view, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 1, HomeTeamCode: "MAD", AwayTeamCode: "ULK"})
	if err != nil {
		t.Fatalf("activate first game: %v", err)
	}
	if !view.Loading || view.Log == nil || len(view.Log.Rows) != 0 {
		t.Fatalf("expected loading log without rows, got loading=%v log=%+v", view.Loading, view.Log)
	}
	if _, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 1, HomeTeamCode: "PAN", AwayTeamCode: "OLY"}); err != nil {
		t.Fatalf("activate second game: %v", err)
	}

	executor.run(t, 1)
	executor.run(t, 0)

	view, err = service.Await(ctx, opened.ID)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if view.Expansion.GameCode != "2" || view.Log.GameCode != "2" {
		t.Fatalf("unexpected open game: state=%s log=%s", view.Expansion.GameCode, view.Log.GameCode)
	}
	if view.Loading {
		t.Fatalf("loading must clear after current fetch")
	}
	if view.Log.ActiveTeam != "PAN" || len(view.Log.Rows) != 1 || view.Log.Rows[0].Player != "Green" {
		t.Fatalf("stale rows leaked into current log: %+v", view.Log.Rows)
	}
}

func TestBrowserService_RoundChangeClosesPanel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	games, rows := browserFixture()
	executor := &queueExecutor{}
	service := newTestBrowserService(t, executor, &stubGameRepo{games: games}, &stubBoxRepo{rows: rows})

	opened, _ := service.Open(ctx, OpenBrowserInput{League: "euroleague", Season: 2025})
	if _, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 2, HomeTeamCode: "MAD", AwayTeamCode: "PAN"}); err != nil {
		t.Fatalf("activate game: %v", err)
	}

	view, err := service.NextRound(ctx, opened.ID)
	if err != nil {
		t.Fatalf("next round: %v", err)
	}
	if view.Round.Number != 3 || view.Expansion.Kind != expansion.KindClosed || view.Loading {
		t.Fatalf("round change must close panel: round=%d kind=%s loading=%v", view.Round.Number, view.Expansion.Kind, view.Loading)
	}

	executor.run(t, 0)
	view, _ = service.Await(ctx, opened.ID)
	if view.Preview != nil {
		t.Fatalf("preview fetched for a closed panel must be discarded")
	}

	view, _ = service.NextRound(ctx, opened.ID)
	if view.Round.Number != 3 || view.HasNext {
		t.Fatalf("next at last round must be a no-op, got round=%d", view.Round.Number)
	}
	view, _ = service.PreviousRound(ctx, opened.ID)
	if view.Round.Number != 2 {
		t.Fatalf("unexpected previous round: got=%d want=2", view.Round.Number)
	}
}

func TestBrowserService_CommandErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	games, rows := browserFixture()
	service := newTestBrowserService(t, &queueExecutor{err: errors.New("pool overloaded")}, &stubGameRepo{games: games}, &stubBoxRepo{rows: rows})

	opened, _ := service.Open(ctx, OpenBrowserInput{League: "euroleague", Season: 2025})

	if _, err := service.SelectRound(ctx, opened.ID, 9); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown round, got %v", err)
	}
	if _, err := service.SetLogTeam(ctx, opened.ID, "MAD"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without open log, got %v", err)
	}
	if _, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 2, HomeTeamCode: "BAR", AwayTeamCode: "FEN"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown game, got %v", err)
	}
	if _, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 1, HomeTeamCode: "MAD", AwayTeamCode: "PAN"}); !errors.Is(err, ErrRoundNotActive) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrRoundNotActive for a round that is not selected, got %v", err)
	}
	if _, err := service.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}

	view, err := service.ActivateGame(ctx, opened.ID, ActivateGameInput{Round: 2, HomeTeamCode: "MAD", AwayTeamCode: "PAN"})
	if err != nil {
		t.Fatalf("activate game: %v", err)
	}
	if view.Expansion.Kind != expansion.KindPreview {
		t.Fatalf("unexpected expansion: %s", view.Expansion.Kind)
	}
	view, err = service.Await(ctx, opened.ID)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if view.Loading || view.Preview != nil {
		t.Fatalf("rejected fetch must clear loading with an empty payload")
	}

	if err := service.Close(ctx, opened.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := service.Get(ctx, opened.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after close, got %v", err)
	}
}
