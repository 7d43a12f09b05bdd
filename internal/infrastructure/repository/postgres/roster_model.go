package postgres

import (
	"database/sql"

	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type playerStatsTableModel struct {
	PlayerID          string          `db:"player_id"`
	PlayerName        string          `db:"player_name"`
	PlayerTeamCode    string          `db:"player_team_code"`
	PlayerTeamName    sql.NullString  `db:"player_team_name"`
	Season            int             `db:"season"`
	Phase             string          `db:"phase"`
	GamesPlayed       sql.NullFloat64 `db:"games_played"`
	PointsScored      sql.NullFloat64 `db:"points_scored"`
	TotalRebounds     sql.NullFloat64 `db:"total_rebounds"`
	Assists           sql.NullFloat64 `db:"assists"`
	ThreePointersMade sql.NullFloat64 `db:"three_pointers_made"`
}

var playerStatsColumns = qb.MustColumns(playerStatsTableModel{})
