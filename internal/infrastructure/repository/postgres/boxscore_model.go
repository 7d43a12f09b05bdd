package postgres

import (
	"database/sql"

	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type gameLogTableModel struct {
	Season               int            `db:"season"`
	Phase                string         `db:"phase"`
	GameCode             string         `db:"gamecode"`
	Team                 string         `db:"team"`
	Player               string         `db:"player"`
	IsStarter            sql.NullInt64  `db:"is_starter"`
	Minutes              sql.NullString `db:"minutes"`
	Points               int            `db:"points"`
	FieldGoalsMade2      int            `db:"field_goals_made_2"`
	FieldGoalsAttempted2 int            `db:"field_goals_attempted_2"`
	FieldGoalsMade3      int            `db:"field_goals_made_3"`
	FieldGoalsAttempted3 int            `db:"field_goals_attempted_3"`
	FreeThrowsMade       int            `db:"free_throws_made"`
	FreeThrowsAttempted  int            `db:"free_throws_attempted"`
	OffensiveRebounds    int            `db:"offensive_rebounds"`
	DefensiveRebounds    int            `db:"defensive_rebounds"`
	TotalRebounds        int            `db:"total_rebounds"`
	Assistances          int            `db:"assistances"`
	Steals               int            `db:"steals"`
	Turnovers            int            `db:"turnovers"`
	BlocksFavour         int            `db:"blocks_favour"`
	BlocksAgainst        int            `db:"blocks_against"`
	FoulsCommited        int            `db:"fouls_commited"`
	FoulsReceived        int            `db:"fouls_received"`
	Valuation            int            `db:"valuation"`
	PlusMinus            int            `db:"plusminus"`
}

var gameLogColumns = qb.MustColumns(gameLogTableModel{})
