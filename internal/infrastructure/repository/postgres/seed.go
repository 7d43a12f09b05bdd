package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT DO NOTHING"

// BootstrapSeed loads the memory fixtures into empty league tables.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	fixtures := memory.SeedFixtures()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range fixtures.Leagues {
		tables, err := tablesFor(l.Code)
		if err != nil {
			return err
		}

		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM `+tables.Schedule); err != nil {
			return fmt.Errorf("count %s for bootstrap seed: %w", tables.Schedule, err)
		}
		if count > 0 {
			continue
		}

		var models []any
		for _, game := range fixtures.Games[l.Code] {
			home, away := scheduleModelsFromGame(game)
			models = append(models, home, away)
		}
		if err := insertModels(ctx, tx, tables.Schedule, models); err != nil {
			return err
		}

		models = models[:0]
		for _, row := range fixtures.BoxRows[l.Code] {
			models = append(models, gameLogModelFromRow(memory.SeedSeason, row))
		}
		if err := insertModels(ctx, tx, tables.GameLogs, models); err != nil {
			return err
		}

		models = models[:0]
		for _, stats := range fixtures.Stats[l.Code] {
			models = append(models, advancedStatsModel(stats))
		}
		if err := insertModels(ctx, tx, tables.AdvancedStats, models); err != nil {
			return err
		}

		models = models[:0]
		for _, entry := range fixtures.Rosters[l.Code] {
			models = append(models, playerStatsModel(entry))
		}
		if err := insertModels(ctx, tx, tables.PlayerStats, models); err != nil {
			return err
		}

		models = models[:0]
		for _, record := range fixtures.Standings[l.Code] {
			models = append(models, standingTableModel{
				TeamCode: record.TeamCode,
				Name:     record.TeamName,
				Season:   record.Season,
				Phase:    record.Phase,
				Position: record.Position,
				Wins:     record.Wins,
				Losses:   record.Losses,
			})
		}
		if err := insertModels(ctx, tx, tables.Standings, models); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func insertModels(ctx context.Context, tx *sqlx.Tx, table string, models []any) error {
	for i, model := range models {
		query, args, err := qb.InsertModel(table, model, seedConflictSuffix)
		if err != nil {
			return fmt.Errorf("build seed %s row %d query: %w", table, i, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s row %d: %w", table, i, err)
		}
	}
	return nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func looseToNullFloat64(v roster.LooseNumber) sql.NullFloat64 {
	if v.Raw() == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v.Float(), Valid: true}
}

// scheduleModelsFromGame expands a game into its home and away rows.
func scheduleModelsFromGame(game schedule.Game) (scheduleTableModel, scheduleTableModel) {
	home := scheduleTableModel{
		Team:          game.HomeTeam,
		TeamCode:      game.HomeTeamCode,
		TeamLogo:      nullString(game.HomeTeamLogo),
		GameDate:      game.Date,
		StartTime:     nullString(game.Time),
		GameTime:      nullString(game.GameTime),
		Opponent:      game.AwayTeam,
		OpponentCode:  game.AwayTeamCode,
		OpponentLogo:  nullString(game.AwayTeamLogo),
		Round:         game.Round,
		Location:      locationHome,
		TeamScore:     nullInt64(game.HomeScore),
		OpponentScore: nullInt64(game.AwayScore),
		GameCode:      nullString(game.GameCode),
		Season:        game.Season,
		Phase:         game.Phase,
	}

	away := home
	away.Team, away.TeamCode, away.TeamLogo = home.Opponent, home.OpponentCode, home.OpponentLogo
	away.Opponent, away.OpponentCode, away.OpponentLogo = home.Team, home.TeamCode, home.TeamLogo
	away.TeamScore, away.OpponentScore = home.OpponentScore, home.TeamScore
	away.Location = locationAway

	return home, away
}

func gameLogModelFromRow(season int, row boxscore.Row) gameLogTableModel {
	starter := sql.NullInt64{Valid: true}
	if row.IsStarter {
		starter.Int64 = 1
	}
	return gameLogTableModel{
		Season:               season,
		Phase:                league.PhaseRegularSeason,
		GameCode:             row.GameCode,
		Team:                 row.TeamCode,
		Player:               row.Player,
		IsStarter:            starter,
		Minutes:              nullString(row.Minutes),
		Points:               row.Points,
		FieldGoalsMade2:      row.FieldGoalsMade2,
		FieldGoalsAttempted2: row.FieldGoalsAtt2,
		FieldGoalsMade3:      row.FieldGoalsMade3,
		FieldGoalsAttempted3: row.FieldGoalsAtt3,
		FreeThrowsMade:       row.FreeThrowsMade,
		FreeThrowsAttempted:  row.FreeThrowsAtt,
		OffensiveRebounds:    row.OffensiveRebounds,
		DefensiveRebounds:    row.DefensiveRebounds,
		TotalRebounds:        row.TotalRebounds,
		Assistances:          row.Assists,
		Steals:               row.Steals,
		Turnovers:            row.Turnovers,
		BlocksFavour:         row.BlocksFavour,
		BlocksAgainst:        row.BlocksAgainst,
		FoulsCommited:        row.FoulsCommitted,
		FoulsReceived:        row.FoulsReceived,
		Valuation:            row.Valuation,
		PlusMinus:            row.PlusMinus,
	}
}

func advancedStatsModel(s teamstats.AdvancedStats) teamAdvancedStatsTableModel {
	return teamAdvancedStatsTableModel{
		TeamCode:        s.TeamCode,
		TeamName:        nullString(s.TeamName),
		Season:          s.Season,
		Phase:           s.Phase,
		Games:           s.Games,
		Pace:            nullFloat64(s.Pace),
		RankPace:        nullInt64(s.RankPace),
		EfficiencyO:     nullFloat64(s.EfficiencyO),
		RankEfficiencyO: nullInt64(s.RankEfficiencyO),
		EfficiencyD:     nullFloat64(s.EfficiencyD),
		RankEfficiencyD: nullInt64(s.RankEfficiencyD),
		NetRating:       nullFloat64(s.NetRating),
		RankNetRating:   nullInt64(s.RankNetRating),
		EFGPctO:         nullFloat64(s.EFGPctO),
		RankEFGPctO:     nullInt64(s.RankEFGPctO),
		EFGPctD:         nullFloat64(s.EFGPctD),
		RankEFGPctD:     nullInt64(s.RankEFGPctD),
		TORatioO:        nullFloat64(s.TORatioO),
		RankTORatioO:    nullInt64(s.RankTORatioO),
		TORatioD:        nullFloat64(s.TORatioD),
		RankTORatioD:    nullInt64(s.RankTORatioD),
		ORebPctO:        nullFloat64(s.ORebPctO),
		RankORebPctO:    nullInt64(s.RankORebPctO),
		ORebPctD:        nullFloat64(s.ORebPctD),
		RankORebPctD:    nullInt64(s.RankORebPctD),
		FTRateO:         nullFloat64(s.FTRateO),
		RankFTRateO:     nullInt64(s.RankFTRateO),
		FTRateD:         nullFloat64(s.FTRateD),
		RankFTRateD:     nullInt64(s.RankFTRateD),
	}
}

func playerStatsModel(e roster.Entry) playerStatsTableModel {
	return playerStatsTableModel{
		PlayerID:          e.PlayerCode,
		PlayerName:        e.PlayerName,
		PlayerTeamCode:    e.TeamCode,
		PlayerTeamName:    nullString(e.TeamName),
		Season:            e.Season,
		Phase:             e.Phase,
		GamesPlayed:       looseToNullFloat64(e.GamesPlayed),
		PointsScored:      looseToNullFloat64(e.Points),
		TotalRebounds:     looseToNullFloat64(e.TotalRebounds),
		Assists:           looseToNullFloat64(e.Assists),
		ThreePointersMade: looseToNullFloat64(e.ThreePointersMade),
	}
}
