package postgres

import (
	"fmt"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

// leagueTables names the table set a league's data lives in.
type leagueTables struct {
	Schedule      string
	GameLogs      string
	AdvancedStats string
	PlayerStats   string
	Standings     string
}

func tablesFor(code league.Code) (leagueTables, error) {
	if _, ok := league.AllCodes[code]; !ok {
		return leagueTables{}, fmt.Errorf("unknown league code %q", code)
	}

	name := string(code)
	return leagueTables{
		Schedule:      "schedule_results_" + name,
		GameLogs:      name + "_game_logs",
		AdvancedStats: "team_advanced_stats_" + name,
		PlayerStats:   "player_stats_from_gamelogs_" + name,
		Standings:     "cumulative_standings_" + name,
	}, nil
}
