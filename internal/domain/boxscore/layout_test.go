package boxscore

import "testing"

func row(team, player string, points int) Row {
	r := NewRow("101", team, player)
	r.Points = points
	return r
}

func TestKindFromPlayerName(t *testing.T) {
	t.Parallel()

	tests := map[string]RowKind{
		"Team":            RowKindTeamAggregate,
		"Total":           RowKindGameTotal,
		" Total ":         RowKindGameTotal,
		"total":           RowKindPlayer,
		"MICIC, VASILIJE": RowKindPlayer,
	}
	for name, want := range tests {
		if got := KindFromPlayerName(name); got != want {
			t.Fatalf("unexpected kind for %q: got=%s want=%s", name, got, want)
		}
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row("MAD", "Total", 88),
		row("MAD", "Player A", 10),
		row("ULK", "Player X", 30),
		row("MAD", "Team", 0),
		row("MAD", "Player B", 22),
		row("MAD", "Player C", 10),
		row("ULK", "Team", 0),
	}

	got := Layout(rows, "MAD")
	want := []string{"Player B", "Player A", "Player C", "Team", "Total"}
	if len(got) != len(want) {
		t.Fatalf("unexpected rows length: got=%d want=%d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Player != name {
			t.Fatalf("unexpected row at %d: got=%s want=%s", i, got[i].Player, name)
		}
	}
}

func TestLayoutWithoutSyntheticRows(t *testing.T) {
	t.Parallel()

	got := Layout([]Row{row("MAD", "Player A", 3), row("MAD", "Player B", 9)}, "MAD")
	if len(got) != 2 || got[0].Player != "Player B" {
		t.Fatalf("unexpected layout: %+v", got)
	}
	if got := Layout(nil, "MAD"); len(got) != 0 {
		t.Fatalf("expected empty layout, got=%d rows", len(got))
	}
}

func TestTeams(t *testing.T) {
	t.Parallel()

	got := Teams([]Row{row("MAD", "A", 1), row("ULK", "B", 1), row("MAD", "C", 1)})
	if len(got) != 2 || got[0] != "MAD" || got[1] != "ULK" {
		t.Fatalf("unexpected teams: %v", got)
	}
}
