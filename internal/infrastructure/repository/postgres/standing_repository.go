package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, season int, phase string, leagueCode league.Code) ([]standing.Record, error) {
	tables, err := tablesFor(leagueCode)
	if err != nil {
		return nil, err
	}

	conditions := []qb.Condition{qb.Eq("season", season)}
	if phase != "" {
		conditions = append(conditions, qb.Eq("phase", phase))
	}

	query, args, err := qb.Select(standingColumns...).From(tables.Standings).
		Where(conditions...).
		OrderBy("position", "teamcode").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Record{
			TeamCode: row.TeamCode,
			TeamName: row.Name,
			Season:   row.Season,
			Phase:    row.Phase,
			Position: row.Position,
			Wins:     row.Wins,
			Losses:   row.Losses,
		})
	}
	return out, nil
}
