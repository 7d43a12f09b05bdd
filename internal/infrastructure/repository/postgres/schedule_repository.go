package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListGames reads the home-side rows of the schedule, one per game.
func (r *ScheduleRepository) ListGames(ctx context.Context, season int, leagueCode league.Code) ([]schedule.Game, error) {
	tables, err := tablesFor(leagueCode)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(scheduleColumns...).From(tables.Schedule).
		Where(
			qb.Eq("season", season),
			qb.In("location", []any{locationHome, locationHomeShort}),
		).
		OrderBy("round", "game_date", "gamecode").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []scheduleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if shouldRetryLiteral(err) {
			return r.listGamesLiteral(ctx, tables.Schedule, season)
		}
		return nil, fmt.Errorf("select games: %w", err)
	}

	return gamesFromRows(rows), nil
}

func (r *ScheduleRepository) listGamesLiteral(ctx context.Context, table string, season int) ([]schedule.Game, error) {
	query, args, err := qb.Select(scheduleColumns...).From(table).
		Where(
			qb.EqLiteral("season", strconv.Itoa(season)),
			qb.Expr("location IN ('"+locationHome+"', '"+locationHomeShort+"')"),
		).
		OrderBy("round", "game_date", "gamecode").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games literal fallback query: %w", err)
	}

	var rows []scheduleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games literal fallback: %w", err)
	}

	return gamesFromRows(rows), nil
}

func gamesFromRows(rows []scheduleTableModel) []schedule.Game {
	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out
}

func gameFromRow(row scheduleTableModel) schedule.Game {
	game := schedule.Game{
		Season:       row.Season,
		Phase:        row.Phase,
		Round:        row.Round,
		Date:         row.GameDate,
		Time:         row.StartTime.String,
		GameTime:     row.GameTime.String,
		HomeTeam:     row.Team,
		HomeTeamCode: row.TeamCode,
		HomeTeamLogo: row.TeamLogo.String,
		AwayTeam:     row.Opponent,
		AwayTeamCode: row.OpponentCode,
		AwayTeamLogo: row.OpponentLogo.String,
		HomeScore:    nullInt64ToIntPtr(row.TeamScore),
		AwayScore:    nullInt64ToIntPtr(row.OpponentScore),
		GameCode:     row.GameCode.String,
	}
	game.IsPlayed = game.HomeScore != nil && game.AwayScore != nil
	return game
}
