package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

const (
	pathGames             = "/api/games"
	pathGameLogs          = "/api/game-logs"
	pathTeamAdvancedStats = "/api/team-advanced-stats"
	pathTeamPlayers       = "/api/team-players"
	pathStandings         = "/api/standings"
)

func baseQuery(season int, leagueCode league.Code) url.Values {
	values := url.Values{}
	values.Set("season", strconv.Itoa(season))
	values.Set("league", string(leagueCode))
	return values
}

func (c *Client) ListGames(ctx context.Context, season int, leagueCode league.Code) ([]schedule.Game, error) {
	var items []map[string]any
	if err := c.doJSON(ctx, pathGames, baseQuery(season, leagueCode), &items); err != nil {
		return nil, fmt.Errorf("fetch games season=%d league=%s: %w", season, leagueCode, err)
	}

	out := make([]schedule.Game, 0, len(items))
	for _, item := range items {
		out = append(out, parseGame(season, item))
	}
	return out, nil
}

func parseGame(season int, item map[string]any) schedule.Game {
	game := schedule.Game{
		Season:       season,
		Phase:        getString(item, "phase"),
		Round:        getInt(item, "round"),
		Date:         getString(item, "game_date", "date"),
		Time:         getString(item, "time"),
		GameTime:     getString(item, "game_time"),
		HomeTeam:     getString(item, "home_team"),
		HomeTeamCode: getString(item, "home_teamcode"),
		HomeTeamLogo: getString(item, "home_teamlogo"),
		AwayTeam:     getString(item, "away_team"),
		AwayTeamCode: getString(item, "away_teamcode"),
		AwayTeamLogo: getString(item, "away_teamlogo"),
		HomeScore:    getIntPtr(item, "home_score"),
		AwayScore:    getIntPtr(item, "away_score"),
		IsPlayed:     getBool(item, "is_played"),
		GameCode:     getString(item, "gamecode"),
	}
	if game.HomeScore == nil || game.AwayScore == nil {
		game.IsPlayed = false
	}
	return game
}

func (c *Client) ListRowsByGame(ctx context.Context, season int, gameCode string, leagueCode league.Code) ([]boxscore.Row, error) {
	query := baseQuery(season, leagueCode)
	query.Set("gamecode", gameCode)

	var items []map[string]any
	if err := c.doJSON(ctx, pathGameLogs, query, &items); err != nil {
		return nil, fmt.Errorf("fetch game logs season=%d gamecode=%s: %w", season, gameCode, err)
	}

	out := make([]boxscore.Row, 0, len(items))
	for _, item := range items {
		out = append(out, parseBoxRow(gameCode, item))
	}
	return out, nil
}

func parseBoxRow(gameCode string, item map[string]any) boxscore.Row {
	row := boxscore.NewRow(gameCode, getString(item, "team"), getString(item, "player"))
	row.IsStarter = getBool(item, "is_starter")
	row.Minutes = getString(item, "minutes")
	row.Points = getInt(item, "points")
	row.FieldGoalsMade2 = getInt(item, "field_goals_made_2")
	row.FieldGoalsAtt2 = getInt(item, "field_goals_attempted_2")
	row.FieldGoalsMade3 = getInt(item, "field_goals_made_3")
	row.FieldGoalsAtt3 = getInt(item, "field_goals_attempted_3")
	row.FreeThrowsMade = getInt(item, "free_throws_made")
	row.FreeThrowsAtt = getInt(item, "free_throws_attempted")
	row.OffensiveRebounds = getInt(item, "offensive_rebounds")
	row.DefensiveRebounds = getInt(item, "defensive_rebounds")
	row.TotalRebounds = getInt(item, "total_rebounds")
	row.Assists = getInt(item, "assistances", "assists")
	row.Steals = getInt(item, "steals")
	row.Turnovers = getInt(item, "turnovers")
	row.BlocksFavour = getInt(item, "blocks_favour")
	row.BlocksAgainst = getInt(item, "blocks_against")
	row.FoulsCommitted = getInt(item, "fouls_commited")
	row.FoulsReceived = getInt(item, "fouls_received", "fouls_drawn")
	row.Valuation = getInt(item, "valuation")
	row.PlusMinus = getInt(item, "plusminus")
	return row
}

func (c *Client) GetAdvancedStats(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) (teamstats.AdvancedStats, bool, error) {
	query := baseQuery(season, leagueCode)
	query.Set("teamCode", teamCode)
	query.Set("phase", phase)

	var item map[string]any
	if err := c.doJSON(ctx, pathTeamAdvancedStats, query, &item); err != nil {
		return teamstats.AdvancedStats{}, false, fmt.Errorf("fetch team advanced stats team=%s season=%d: %w", teamCode, season, err)
	}
	if len(item) == 0 {
		return teamstats.AdvancedStats{}, false, nil
	}

	return parseAdvancedStats(teamCode, season, phase, item), true, nil
}

func parseAdvancedStats(teamCode string, season int, phase string, item map[string]any) teamstats.AdvancedStats {
	code := getString(item, "teamcode", "team_code")
	if code == "" {
		code = teamCode
	}
	return teamstats.AdvancedStats{
		TeamCode:        code,
		TeamName:        getString(item, "team_name", "team"),
		Season:          season,
		Phase:           phase,
		Games:           getInt(item, "games"),
		Pace:            getFloatPtr(item, "pace"),
		RankPace:        getIntPtr(item, "rank_pace"),
		EfficiencyO:     getFloatPtr(item, "efficiency_o"),
		RankEfficiencyO: getIntPtr(item, "rank_efficiency_o"),
		EfficiencyD:     getFloatPtr(item, "efficiency_d"),
		RankEfficiencyD: getIntPtr(item, "rank_efficiency_d"),
		NetRating:       getFloatPtr(item, "net_rating"),
		RankNetRating:   getIntPtr(item, "rank_net_rating"),
		EFGPctO:         getFloatPtr(item, "efgperc_o"),
		RankEFGPctO:     getIntPtr(item, "rank_efgperc_o"),
		EFGPctD:         getFloatPtr(item, "efgperc_d"),
		RankEFGPctD:     getIntPtr(item, "rank_efgperc_d"),
		TORatioO:        getFloatPtr(item, "toratio_o"),
		RankTORatioO:    getIntPtr(item, "rank_toratio_o"),
		TORatioD:        getFloatPtr(item, "toratio_d"),
		RankTORatioD:    getIntPtr(item, "rank_toratio_d"),
		ORebPctO:        getFloatPtr(item, "orebperc_o"),
		RankORebPctO:    getIntPtr(item, "rank_orebperc_o"),
		ORebPctD:        getFloatPtr(item, "orebperc_d"),
		RankORebPctD:    getIntPtr(item, "rank_orebperc_d"),
		FTRateO:         getFloatPtr(item, "ftrate_o"),
		RankFTRateO:     getIntPtr(item, "rank_ftrate_o"),
		FTRateD:         getFloatPtr(item, "ftrate_d"),
		RankFTRateD:     getIntPtr(item, "rank_ftrate_d"),
	}
}

// ListByTeam omits the phase parameter when phase is empty.
func (c *Client) ListByTeam(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) ([]roster.Entry, error) {
	query := baseQuery(season, leagueCode)
	query.Set("teamCode", teamCode)
	if phase != "" {
		query.Set("phase", phase)
	}

	var items []map[string]any
	if err := c.doJSON(ctx, pathTeamPlayers, query, &items); err != nil {
		return nil, fmt.Errorf("fetch team players team=%s season=%d: %w", teamCode, season, err)
	}

	out := make([]roster.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, roster.Entry{
			PlayerCode:        getString(item, "player_id"),
			PlayerName:        getString(item, "player_name"),
			TeamCode:          getString(item, "player_team_code"),
			TeamName:          getString(item, "player_team_name"),
			Season:            season,
			Phase:             getString(item, "phase"),
			GamesPlayed:       roster.Loose(lookupMapValue(item, "games_played")),
			Points:            roster.Loose(lookupMapValue(item, "points_scored")),
			TotalRebounds:     roster.Loose(lookupMapValue(item, "total_rebounds")),
			Assists:           roster.Loose(lookupMapValue(item, "assists")),
			ThreePointersMade: roster.Loose(lookupMapValue(item, "three_pointers_made")),
		})
	}
	return out, nil
}

func (c *Client) ListBySeason(ctx context.Context, season int, phase string, leagueCode league.Code) ([]standing.Record, error) {
	query := baseQuery(season, leagueCode)
	if phase != "" {
		query.Set("phase", phase)
	}

	var items []map[string]any
	if err := c.doJSON(ctx, pathStandings, query, &items); err != nil {
		return nil, fmt.Errorf("fetch standings season=%d league=%s: %w", season, leagueCode, err)
	}

	out := make([]standing.Record, 0, len(items))
	for _, item := range items {
		out = append(out, standing.Record{
			TeamCode: getString(item, "teamcode", "team_code"),
			TeamName: getString(item, "name", "team_name"),
			Season:   season,
			Phase:    getString(item, "phase"),
			Position: getInt(item, "position"),
			Wins:     getInt(item, "w", "wins"),
			Losses:   getInt(item, "l", "losses"),
		})
	}
	return out, nil
}
