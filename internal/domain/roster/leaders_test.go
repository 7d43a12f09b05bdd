package roster

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{name: "nil", raw: nil, want: 0},
		{name: "float", raw: 12.5, want: 12.5},
		{name: "int", raw: 7, want: 7},
		{name: "numeric string", raw: " 12 ", want: 12},
		{name: "decimal string", raw: "3.25", want: 3.25},
		{name: "garbage string", raw: "n/a", want: 0},
		{name: "empty string", raw: "", want: 0},
		{name: "nan", raw: math.NaN(), want: 0},
		{name: "nan string", raw: "NaN", want: 0},
		{name: "json number", raw: json.Number("4.5"), want: 4.5},
		{name: "bool", raw: true, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Coerce(tc.raw); got != tc.want {
				t.Fatalf("unexpected value: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestLeaderPrefersStringValueOverSmallerNumber(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{PlayerName: "Numeric", Points: Number(10)},
		{PlayerName: "Stringy", Points: Loose("12")},
	}

	got, ok := Leader(entries, CategoryPoints)
	if !ok {
		t.Fatalf("expected leader")
	}
	if got.PlayerName != "Stringy" {
		t.Fatalf("unexpected leader: got=%s want=Stringy", got.PlayerName)
	}
}

func TestLeaderTieKeepsEarliest(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{PlayerName: "First", Assists: Loose(nil)},
		{PlayerName: "Second", Assists: Number(6)},
		{PlayerName: "Third", Assists: Loose("6")},
	}

	got, _ := Leader(entries, CategoryAssists)
	if got.PlayerName != "Second" {
		t.Fatalf("unexpected leader: got=%s want=Second", got.PlayerName)
	}

	zeros := []Entry{
		{PlayerName: "Nil", TotalRebounds: Loose(nil)},
		{PlayerName: "NaN", TotalRebounds: Number(math.NaN())},
	}
	got, _ = Leader(zeros, CategoryRebounds)
	if got.PlayerName != "Nil" {
		t.Fatalf("all-zero roster must keep first entry, got=%s", got.PlayerName)
	}
}

func TestLeaders(t *testing.T) {
	t.Parallel()

	home := []Entry{
		{PlayerName: "H1", TeamCode: "MAD", Points: Number(15), TotalRebounds: Number(9), Assists: Number(2), ThreePointersMade: Loose("1.5")},
	}
	away := []Entry{
		{PlayerName: "A1", TeamCode: "ULK", Points: Loose("18.2"), TotalRebounds: Number(4), Assists: Number(6), ThreePointersMade: Number(1.5)},
	}

	leaders := Leaders(home, away)
	want := map[Category]string{
		CategoryPoints:            "A1",
		CategoryRebounds:          "H1",
		CategoryAssists:           "A1",
		CategoryThreePointersMade: "H1",
	}
	if len(leaders) != len(Categories) {
		t.Fatalf("unexpected leaders: got=%d want=%d", len(leaders), len(Categories))
	}
	for _, leader := range leaders {
		if !leader.Found {
			t.Fatalf("expected leader for %s", leader.Category)
		}
		if leader.Entry.PlayerName != want[leader.Category] {
			t.Fatalf("unexpected leader for %s: got=%s want=%s", leader.Category, leader.Entry.PlayerName, want[leader.Category])
		}
	}
	if leaders[0].Value != 18.2 {
		t.Fatalf("unexpected points value: got=%v want=18.2", leaders[0].Value)
	}
}

func TestLeadersEmptyRoster(t *testing.T) {
	t.Parallel()

	for _, leader := range Leaders(nil, nil) {
		if leader.Found {
			t.Fatalf("empty roster must not produce a leader for %s", leader.Category)
		}
	}
}
