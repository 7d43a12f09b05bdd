package postgres

import (
	"database/sql"

	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

// scheduleTableModel is one team-oriented row; every game is stored once per side.
type scheduleTableModel struct {
	Team          string         `db:"team"`
	TeamCode      string         `db:"teamcode"`
	TeamLogo      sql.NullString `db:"teamlogo"`
	GameDate      string         `db:"game_date"`
	StartTime     sql.NullString `db:"start_time"`
	GameTime      sql.NullString `db:"game_time"`
	Opponent      string         `db:"opponent"`
	OpponentCode  string         `db:"opponentcode"`
	OpponentLogo  sql.NullString `db:"opponentlogo"`
	Round         int            `db:"round"`
	Location      string         `db:"location"`
	TeamScore     sql.NullInt64  `db:"team_score"`
	OpponentScore sql.NullInt64  `db:"opponent_score"`
	GameCode      sql.NullString `db:"gamecode"`
	Season        int            `db:"season"`
	Phase         string         `db:"phase"`
}

var scheduleColumns = qb.MustColumns(scheduleTableModel{})

const (
	locationHome      = "Home"
	locationHomeShort = "H"
	locationAway      = "Away"
)
