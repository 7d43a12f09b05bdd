package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetAdvancedStats(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) (teamstats.AdvancedStats, bool, error) {
	tables, err := tablesFor(leagueCode)
	if err != nil {
		return teamstats.AdvancedStats{}, false, err
	}

	query, args, err := qb.Select(teamAdvancedStatsColumns...).From(tables.AdvancedStats).
		Where(
			qb.Eq("teamcode", teamCode),
			qb.Eq("season", season),
			qb.Eq("phase", phase),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return teamstats.AdvancedStats{}, false, fmt.Errorf("build get team advanced stats query: %w", err)
	}

	var row teamAdvancedStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.AdvancedStats{}, false, nil
		}
		return teamstats.AdvancedStats{}, false, fmt.Errorf("get team advanced stats: %w", err)
	}

	return advancedStatsFromRow(row), true, nil
}

func advancedStatsFromRow(row teamAdvancedStatsTableModel) teamstats.AdvancedStats {
	return teamstats.AdvancedStats{
		TeamCode:        row.TeamCode,
		TeamName:        row.TeamName.String,
		Season:          row.Season,
		Phase:           row.Phase,
		Games:           row.Games,
		Pace:            nullFloat64ToPtr(row.Pace),
		RankPace:        nullInt64ToIntPtr(row.RankPace),
		EfficiencyO:     nullFloat64ToPtr(row.EfficiencyO),
		RankEfficiencyO: nullInt64ToIntPtr(row.RankEfficiencyO),
		EfficiencyD:     nullFloat64ToPtr(row.EfficiencyD),
		RankEfficiencyD: nullInt64ToIntPtr(row.RankEfficiencyD),
		NetRating:       nullFloat64ToPtr(row.NetRating),
		RankNetRating:   nullInt64ToIntPtr(row.RankNetRating),
		EFGPctO:         nullFloat64ToPtr(row.EFGPctO),
		RankEFGPctO:     nullInt64ToIntPtr(row.RankEFGPctO),
		EFGPctD:         nullFloat64ToPtr(row.EFGPctD),
		RankEFGPctD:     nullInt64ToIntPtr(row.RankEFGPctD),
		TORatioO:        nullFloat64ToPtr(row.TORatioO),
		RankTORatioO:    nullInt64ToIntPtr(row.RankTORatioO),
		TORatioD:        nullFloat64ToPtr(row.TORatioD),
		RankTORatioD:    nullInt64ToIntPtr(row.RankTORatioD),
		ORebPctO:        nullFloat64ToPtr(row.ORebPctO),
		RankORebPctO:    nullInt64ToIntPtr(row.RankORebPctO),
		ORebPctD:        nullFloat64ToPtr(row.ORebPctD),
		RankORebPctD:    nullInt64ToIntPtr(row.RankORebPctD),
		FTRateO:         nullFloat64ToPtr(row.FTRateO),
		RankFTRateO:     nullInt64ToIntPtr(row.RankFTRateO),
		FTRateD:         nullFloat64ToPtr(row.FTRateD),
		RankFTRateD:     nullInt64ToIntPtr(row.RankFTRateD),
	}
}
