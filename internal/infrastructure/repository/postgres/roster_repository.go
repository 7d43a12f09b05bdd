package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// ListByTeam filters by phase unless phase is empty.
func (r *RosterRepository) ListByTeam(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) ([]roster.Entry, error) {
	tables, err := tablesFor(leagueCode)
	if err != nil {
		return nil, err
	}

	conditions := []qb.Condition{
		qb.Eq("player_team_code", teamCode),
		qb.Eq("season", season),
	}
	if phase != "" {
		conditions = append(conditions, qb.Eq("phase", phase))
	}

	query, args, err := qb.Select(playerStatsColumns...).From(tables.PlayerStats).
		Where(conditions...).
		OrderBy("points_scored DESC NULLS LAST", "player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team players query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team players: %w", err)
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			PlayerCode:        row.PlayerID,
			PlayerName:        row.PlayerName,
			TeamCode:          row.PlayerTeamCode,
			TeamName:          row.PlayerTeamName.String,
			Season:            row.Season,
			Phase:             row.Phase,
			GamesPlayed:       roster.Loose(nullFloat64ToAny(row.GamesPlayed)),
			Points:            roster.Loose(nullFloat64ToAny(row.PointsScored)),
			TotalRebounds:     roster.Loose(nullFloat64ToAny(row.TotalRebounds)),
			Assists:           roster.Loose(nullFloat64ToAny(row.Assists)),
			ThreePointersMade: roster.Loose(nullFloat64ToAny(row.ThreePointersMade)),
		})
	}
	return out, nil
}
