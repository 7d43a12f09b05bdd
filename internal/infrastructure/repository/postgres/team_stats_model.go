package postgres

import (
	"database/sql"

	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type teamAdvancedStatsTableModel struct {
	TeamCode        string          `db:"teamcode"`
	TeamName        sql.NullString  `db:"team_name"`
	Season          int             `db:"season"`
	Phase           string          `db:"phase"`
	Games           int             `db:"games"`
	Pace            sql.NullFloat64 `db:"pace"`
	RankPace        sql.NullInt64   `db:"rank_pace"`
	EfficiencyO     sql.NullFloat64 `db:"efficiency_o"`
	RankEfficiencyO sql.NullInt64   `db:"rank_efficiency_o"`
	EfficiencyD     sql.NullFloat64 `db:"efficiency_d"`
	RankEfficiencyD sql.NullInt64   `db:"rank_efficiency_d"`
	NetRating       sql.NullFloat64 `db:"net_rating"`
	RankNetRating   sql.NullInt64   `db:"rank_net_rating"`
	EFGPctO         sql.NullFloat64 `db:"efgperc_o"`
	RankEFGPctO     sql.NullInt64   `db:"rank_efgperc_o"`
	EFGPctD         sql.NullFloat64 `db:"efgperc_d"`
	RankEFGPctD     sql.NullInt64   `db:"rank_efgperc_d"`
	TORatioO        sql.NullFloat64 `db:"toratio_o"`
	RankTORatioO    sql.NullInt64   `db:"rank_toratio_o"`
	TORatioD        sql.NullFloat64 `db:"toratio_d"`
	RankTORatioD    sql.NullInt64   `db:"rank_toratio_d"`
	ORebPctO        sql.NullFloat64 `db:"orebperc_o"`
	RankORebPctO    sql.NullInt64   `db:"rank_orebperc_o"`
	ORebPctD        sql.NullFloat64 `db:"orebperc_d"`
	RankORebPctD    sql.NullInt64   `db:"rank_orebperc_d"`
	FTRateO         sql.NullFloat64 `db:"ftrate_o"`
	RankFTRateO     sql.NullInt64   `db:"rank_ftrate_o"`
	FTRateD         sql.NullFloat64 `db:"ftrate_d"`
	RankFTRateD     sql.NullInt64   `db:"rank_ftrate_d"`
}

var teamAdvancedStatsColumns = qb.MustColumns(teamAdvancedStatsTableModel{})
