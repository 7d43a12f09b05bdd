package postgres

import qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"

type standingTableModel struct {
	TeamCode string `db:"teamcode"`
	Name     string `db:"name"`
	Season   int    `db:"season"`
	Phase    string `db:"phase"`
	Position int    `db:"position"`
	Wins     int    `db:"w"`
	Losses   int    `db:"l"`
}

var standingColumns = qb.MustColumns(standingTableModel{})
