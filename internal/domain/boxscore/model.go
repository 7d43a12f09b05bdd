package boxscore

import "strings"

// RowKind separates real players from the synthetic rows of a box score.
type RowKind string

const (
	RowKindPlayer        RowKind = "player"
	RowKindTeamAggregate RowKind = "team"
	RowKindGameTotal     RowKind = "total"
)

const (
	teamAggregateName = "Team"
	gameTotalName     = "Total"
)

// KindFromPlayerName tags a row at ingestion using the upstream sentinel names.
func KindFromPlayerName(name string) RowKind {
	switch strings.TrimSpace(name) {
	case teamAggregateName:
		return RowKindTeamAggregate
	case gameTotalName:
		return RowKindGameTotal
	default:
		return RowKindPlayer
	}
}

// Row is one line of a game box score, owned by a team.
type Row struct {
	Kind      RowKind
	GameCode  string
	TeamCode  string
	Player    string
	IsStarter bool
	Minutes   string

	Points            int
	FieldGoalsMade2   int
	FieldGoalsAtt2    int
	FieldGoalsMade3   int
	FieldGoalsAtt3    int
	FreeThrowsMade    int
	FreeThrowsAtt     int
	OffensiveRebounds int
	DefensiveRebounds int
	TotalRebounds     int
	Assists           int
	Steals            int
	Turnovers         int
	BlocksFavour      int
	BlocksAgainst     int
	FoulsCommitted    int
	FoulsReceived     int
	Valuation         int
	PlusMinus         int
}

// NewRow builds a row and assigns its kind from the player name.
func NewRow(gameCode, teamCode, player string) Row {
	return Row{
		Kind:     KindFromPlayerName(player),
		GameCode: gameCode,
		TeamCode: teamCode,
		Player:   player,
	}
}
