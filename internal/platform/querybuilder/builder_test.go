package querybuilder

import (
	"strings"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("gamecode", "player").
		From("euroleague_game_logs").
		Where(Eq("season", 2025), Eq("gamecode", "1")).
		OrderBy("teamcode", "player").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT gamecode, player FROM euroleague_game_logs WHERE season = $1 AND gamecode = $2 ORDER BY teamcode, player LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 2025 || args[1] != "1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndLiteralConditions(t *testing.T) {
	query, args, err := Select("round").
		From("schedule_results_eurocup").
		Where(
			EqLiteral("teamcode", "O'NE"),
			In("location", []any{"Home", "H"}),
			Expr("round >= ?", 2),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT round FROM schedule_results_eurocup WHERE teamcode = 'O''NE' AND location IN ($1, $2) AND round >= $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("round").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("cumulative_standings_euroleague").
		Columns("teamcode", "w").
		Values("MAD", 2).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO cumulative_standings_euroleague (teamcode, w) VALUES ($1, $2) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "MAD" || args[1] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_SkipsUntaggedFields(t *testing.T) {
	type row struct {
		TeamCode string `db:"teamcode"`
		Wins     int    `db:"w"`
		Note     string
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModel("cumulative_standings_eurocup", &row{TeamCode: "TTK", Wins: 1, Note: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	if query != "INSERT INTO cumulative_standings_eurocup (teamcode, w) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}

func TestColumns_FollowsFieldOrder(t *testing.T) {
	type row struct {
		TeamCode string `db:"teamcode"`
		Position int    `db:"position,omitempty"`
		internal string `db:"hidden"`
		Ignored  string `db:"-"`
	}

	got := MustColumns(row{})
	want := []string{"teamcode", "position"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected columns: got=%v want=%v", got, want)
	}

	if _, err := Columns((*row)(nil)); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
