package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type BoxScoreRepository struct {
	db *sqlx.DB
}

func NewBoxScoreRepository(db *sqlx.DB) *BoxScoreRepository {
	return &BoxScoreRepository{db: db}
}

func (r *BoxScoreRepository) ListRowsByGame(ctx context.Context, season int, gameCode string, leagueCode league.Code) ([]boxscore.Row, error) {
	tables, err := tablesFor(leagueCode)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(gameLogColumns...).From(tables.GameLogs).
		Where(
			qb.Eq("season", season),
			qb.Eq("gamecode", gameCode),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game log rows query: %w", err)
	}

	var rows []gameLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select game log rows: %w", err)
	}

	out := make([]boxscore.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, boxRowFromModel(row))
	}
	return out, nil
}

func boxRowFromModel(m gameLogTableModel) boxscore.Row {
	row := boxscore.NewRow(m.GameCode, m.Team, m.Player)
	row.IsStarter = m.IsStarter.Valid && m.IsStarter.Int64 == 1
	row.Minutes = m.Minutes.String
	row.Points = m.Points
	row.FieldGoalsMade2 = m.FieldGoalsMade2
	row.FieldGoalsAtt2 = m.FieldGoalsAttempted2
	row.FieldGoalsMade3 = m.FieldGoalsMade3
	row.FieldGoalsAtt3 = m.FieldGoalsAttempted3
	row.FreeThrowsMade = m.FreeThrowsMade
	row.FreeThrowsAtt = m.FreeThrowsAttempted
	row.OffensiveRebounds = m.OffensiveRebounds
	row.DefensiveRebounds = m.DefensiveRebounds
	row.TotalRebounds = m.TotalRebounds
	row.Assists = m.Assistances
	row.Steals = m.Steals
	row.Turnovers = m.Turnovers
	row.BlocksFavour = m.BlocksFavour
	row.BlocksAgainst = m.BlocksAgainst
	row.FoulsCommitted = m.FoulsCommited
	row.FoulsReceived = m.FoulsReceived
	row.Valuation = m.Valuation
	row.PlusMinus = m.PlusMinus
	return row
}
