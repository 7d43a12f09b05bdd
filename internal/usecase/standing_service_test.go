package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/standing"
)

type stubLeagueRepo struct {
	items []league.League
}

func (s *stubLeagueRepo) List(context.Context) ([]league.League, error) {
	return s.items, nil
}

func (s *stubLeagueRepo) GetByCode(_ context.Context, code league.Code) (league.League, bool, error) {
	for _, item := range s.items {
		if item.Code == code {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}

type stubStandingRepo struct {
	items []standing.Record
	err   error
	calls int
}

func (s *stubStandingRepo) ListBySeason(context.Context, int, string, league.Code) ([]standing.Record, error) {
	s.calls++
	return s.items, s.err
}

func TestStandingService_List_SortsTable(t *testing.T) {
	t.Parallel()

	leagues := &stubLeagueRepo{items: []league.League{testEuroleague}}
	standings := &stubStandingRepo{items: []standing.Record{
		{TeamCode: "ULK", Wins: 6, Losses: 4},
		{TeamCode: "MAD", Wins: 8, Losses: 2},
		{TeamCode: "PAN", Wins: 8, Losses: 1},
	}}

	service := NewStandingService(leagues, standings)
	got, err := service.List(context.Background(), "euroleague", 2025)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}

	want := []string{"PAN", "MAD", "ULK"}
	for i, code := range want {
		if got[i].TeamCode != code {
			t.Fatalf("unexpected team at %d: got=%s want=%s", i, got[i].TeamCode, code)
		}
	}
	if standings.items[0].TeamCode != "ULK" {
		t.Fatalf("repository slice must not be reordered")
	}
}
