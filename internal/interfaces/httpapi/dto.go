package httpapi

import (
	"time"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type leagueDTO struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsDefault bool   `json:"is_default"`
}

type roundIndexDTO struct {
	League       leagueDTO `json:"league"`
	Season       int       `json:"season"`
	Rounds       []int     `json:"rounds"`
	DefaultRound int       `json:"default_round"`
}

type kickoffDTO struct {
	Instant string `json:"instant"`
	Display string `json:"display"`
	Zone    string `json:"zone,omitempty"`
	Timed   bool   `json:"timed"`
}

type gameDTO struct {
	GameCode     string     `json:"game_code,omitempty"`
	Round        int        `json:"round"`
	Phase        string     `json:"phase,omitempty"`
	Date         string     `json:"date"`
	HomeTeam     string     `json:"home_team"`
	HomeTeamCode string     `json:"home_team_code"`
	HomeTeamLogo string     `json:"home_team_logo,omitempty"`
	HomeRecord   string     `json:"home_record,omitempty"`
	AwayTeam     string     `json:"away_team"`
	AwayTeamCode string     `json:"away_team_code"`
	AwayTeamLogo string     `json:"away_team_logo,omitempty"`
	AwayRecord   string     `json:"away_record,omitempty"`
	HomeScore    *int       `json:"home_score"`
	AwayScore    *int       `json:"away_score"`
	IsPlayed     bool       `json:"is_played"`
	HasBoxScore  bool       `json:"has_box_score"`
	Kickoff      kickoffDTO `json:"kickoff"`
}

type segmentDTO struct {
	Day   string    `json:"day"`
	Games []gameDTO `json:"games"`
}

type roundViewDTO struct {
	League   leagueDTO    `json:"league"`
	Season   int          `json:"season"`
	Rounds   []int        `json:"rounds"`
	Round    int          `json:"round"`
	Timezone string       `json:"timezone"`
	Segments []segmentDTO `json:"segments"`
}

type boxScoreRowDTO struct {
	Kind              string `json:"kind"`
	TeamCode          string `json:"team_code"`
	Player            string `json:"player"`
	IsStarter         bool   `json:"is_starter"`
	Minutes           string `json:"minutes"`
	Points            int    `json:"points"`
	FieldGoalsMade2   int    `json:"field_goals_made_2"`
	FieldGoalsAtt2    int    `json:"field_goals_attempted_2"`
	FieldGoalsMade3   int    `json:"field_goals_made_3"`
	FieldGoalsAtt3    int    `json:"field_goals_attempted_3"`
	FreeThrowsMade    int    `json:"free_throws_made"`
	FreeThrowsAtt     int    `json:"free_throws_attempted"`
	OffensiveRebounds int    `json:"offensive_rebounds"`
	DefensiveRebounds int    `json:"defensive_rebounds"`
	TotalRebounds     int    `json:"total_rebounds"`
	Assists           int    `json:"assists"`
	Steals            int    `json:"steals"`
	Turnovers         int    `json:"turnovers"`
	BlocksFavour      int    `json:"blocks_favour"`
	BlocksAgainst     int    `json:"blocks_against"`
	FoulsCommitted    int    `json:"fouls_committed"`
	FoulsReceived     int    `json:"fouls_received"`
	Valuation         int    `json:"valuation"`
	PlusMinus         int    `json:"plus_minus"`
}

type boxScoreDTO struct {
	League     leagueDTO        `json:"league"`
	Season     int              `json:"season"`
	GameCode   string           `json:"game_code"`
	Teams      []string         `json:"teams"`
	ActiveTeam string           `json:"active_team"`
	Rows       []boxScoreRowDTO `json:"rows"`
}

type teamValueDTO struct {
	Value string `json:"value"`
	Rank  string `json:"rank"`
	Tier  string `json:"tier,omitempty"`
}

type comparisonDTO struct {
	Key   string       `json:"key"`
	Label string       `json:"label"`
	Side  string       `json:"side,omitempty"`
	Home  teamValueDTO `json:"home"`
	Away  teamValueDTO `json:"away"`
}

type leaderDTO struct {
	Category   string  `json:"category"`
	PlayerName string  `json:"player_name"`
	TeamCode   string  `json:"team_code"`
	Value      string  `json:"value"`
	RawValue   float64 `json:"raw_value"`
	Found      bool    `json:"found"`
}

type previewTeamDTO struct {
	TeamCode string `json:"team_code"`
	TeamName string `json:"team_name,omitempty"`
	Record   string `json:"record,omitempty"`
	HasStats bool   `json:"has_stats"`
	Players  int    `json:"players"`
}

type previewDTO struct {
	League      leagueDTO       `json:"league"`
	Season      int             `json:"season"`
	Phase       string          `json:"phase"`
	TotalTeams  int             `json:"total_teams"`
	Home        previewTeamDTO  `json:"home"`
	Away        previewTeamDTO  `json:"away"`
	Comparisons []comparisonDTO `json:"comparisons"`
	Leaders     []leaderDTO     `json:"leaders"`
}

type standingDTO struct {
	TeamCode string `json:"team_code"`
	TeamName string `json:"team_name"`
	Season   int    `json:"season"`
	Phase    string `json:"phase"`
	Position int    `json:"position"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Record   string `json:"record"`
}

type expansionDTO struct {
	Kind     string `json:"kind"`
	Key      string `json:"key,omitempty"`
	GameCode string `json:"game_code,omitempty"`
	Seq      uint64 `json:"seq"`
}

type logViewDTO struct {
	GameCode   string           `json:"game_code"`
	HomeTeam   string           `json:"home_team"`
	AwayTeam   string           `json:"away_team"`
	ActiveTeam string           `json:"active_team"`
	Rows       []boxScoreRowDTO `json:"rows"`
}

type browserViewDTO struct {
	ID          string       `json:"id"`
	League      leagueDTO    `json:"league"`
	Season      int          `json:"season"`
	Timezone    string       `json:"timezone"`
	Rounds      []int        `json:"rounds"`
	Round       int          `json:"round"`
	Segments    []segmentDTO `json:"segments"`
	HasPrevious bool         `json:"has_previous"`
	HasNext     bool         `json:"has_next"`
	Expansion   expansionDTO `json:"expansion"`
	Loading     bool         `json:"loading"`
	Log         *logViewDTO  `json:"log,omitempty"`
	Preview     *previewDTO  `json:"preview,omitempty"`
}

func leagueToDTO(item league.League) leagueDTO {
	return leagueDTO{
		Code:      item.Code.String(),
		Name:      item.Name,
		Slug:      item.Slug,
		IsDefault: item.IsDefault,
	}
}

func roundViewToDTO(view usecase.RoundView) roundViewDTO {
	return roundViewDTO{
		League:   leagueToDTO(view.League),
		Season:   view.Season,
		Rounds:   nonNilInts(view.Rounds),
		Round:    view.Round.Number,
		Timezone: locationName(view.Location),
		Segments: segmentsToDTO(view.Round.Segments, view.Records),
	}
}

func segmentsToDTO(segments []schedule.DateSegment, records map[string]standing.Record) []segmentDTO {
	out := make([]segmentDTO, 0, len(segments))
	for _, segment := range segments {
		games := make([]gameDTO, 0, len(segment.Games))
		for _, item := range segment.Games {
			games = append(games, gameToDTO(item, records))
		}
		out = append(out, segmentDTO{Day: segment.Day, Games: games})
	}
	return out
}

func gameToDTO(item schedule.ScheduledGame, records map[string]standing.Record) gameDTO {
	game := item.Game
	out := gameDTO{
		GameCode:     game.GameCode,
		Round:        game.Round,
		Phase:        game.Phase,
		Date:         game.CalendarDay(),
		HomeTeam:     game.HomeTeam,
		HomeTeamCode: game.HomeTeamCode,
		HomeTeamLogo: game.HomeTeamLogo,
		AwayTeam:     game.AwayTeam,
		AwayTeamCode: game.AwayTeamCode,
		AwayTeamLogo: game.AwayTeamLogo,
		HomeScore:    game.HomeScore,
		AwayScore:    game.AwayScore,
		IsPlayed:     game.IsPlayed,
		HasBoxScore:  game.HasBoxScore(),
		Kickoff:      kickoffToDTO(item.Kickoff),
	}
	if record, ok := records[game.HomeTeamCode]; ok {
		out.HomeRecord = record.Label()
	}
	if record, ok := records[game.AwayTeamCode]; ok {
		out.AwayRecord = record.Label()
	}
	return out
}

func kickoffToDTO(kickoff schedule.Kickoff) kickoffDTO {
	out := kickoffDTO{
		Display: kickoff.Label(),
		Zone:    kickoff.Zone,
		Timed:   kickoff.Timed,
	}
	if !kickoff.Instant.IsZero() {
		out.Instant = kickoff.Instant.UTC().Format(time.RFC3339)
	}
	return out
}

func boxScoreToDTO(view usecase.BoxScoreView) boxScoreDTO {
	teams := view.Teams
	if teams == nil {
		teams = []string{}
	}
	return boxScoreDTO{
		League:     leagueToDTO(view.League),
		Season:     view.Season,
		GameCode:   view.GameCode,
		Teams:      teams,
		ActiveTeam: view.ActiveTeam,
		Rows:       boxScoreRowsToDTO(view.Rows),
	}
}

func boxScoreRowsToDTO(rows []boxscore.Row) []boxScoreRowDTO {
	out := make([]boxScoreRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, boxScoreRowDTO{
			Kind:              string(row.Kind),
			TeamCode:          row.TeamCode,
			Player:            row.Player,
			IsStarter:         row.IsStarter,
			Minutes:           row.Minutes,
			Points:            row.Points,
			FieldGoalsMade2:   row.FieldGoalsMade2,
			FieldGoalsAtt2:    row.FieldGoalsAtt2,
			FieldGoalsMade3:   row.FieldGoalsMade3,
			FieldGoalsAtt3:    row.FieldGoalsAtt3,
			FreeThrowsMade:    row.FreeThrowsMade,
			FreeThrowsAtt:     row.FreeThrowsAtt,
			OffensiveRebounds: row.OffensiveRebounds,
			DefensiveRebounds: row.DefensiveRebounds,
			TotalRebounds:     row.TotalRebounds,
			Assists:           row.Assists,
			Steals:            row.Steals,
			Turnovers:         row.Turnovers,
			BlocksFavour:      row.BlocksFavour,
			BlocksAgainst:     row.BlocksAgainst,
			FoulsCommitted:    row.FoulsCommitted,
			FoulsReceived:     row.FoulsReceived,
			Valuation:         row.Valuation,
			PlusMinus:         row.PlusMinus,
		})
	}
	return out
}

func previewToDTO(preview usecase.Preview) previewDTO {
	comparisons := make([]comparisonDTO, 0, len(preview.Comparisons))
	for _, item := range preview.Comparisons {
		comparisons = append(comparisons, comparisonDTO{
			Key:   item.Metric.Key,
			Label: item.Metric.Label,
			Side:  string(item.Metric.Side),
			Home:  teamValueToDTO(item.Home),
			Away:  teamValueToDTO(item.Away),
		})
	}

	leaders := make([]leaderDTO, 0, len(preview.Leaders))
	for _, item := range preview.Leaders {
		leaders = append(leaders, leaderToDTO(item))
	}

	return previewDTO{
		League:      leagueToDTO(preview.League),
		Season:      preview.Season,
		Phase:       preview.Phase,
		TotalTeams:  preview.TotalTeams,
		Home:        previewTeamToDTO(preview.Home),
		Away:        previewTeamToDTO(preview.Away),
		Comparisons: comparisons,
		Leaders:     leaders,
	}
}

func previewTeamToDTO(team usecase.TeamPreview) previewTeamDTO {
	out := previewTeamDTO{
		TeamCode: team.TeamCode,
		TeamName: team.Stats.TeamName,
		HasStats: team.HasStats,
		Players:  len(team.Players),
	}
	if team.HasRecord {
		out.Record = team.Record.Label()
		if out.TeamName == "" {
			out.TeamName = team.Record.TeamName
		}
	}
	return out
}

func teamValueToDTO(value teamstats.TeamValue) teamValueDTO {
	return teamValueDTO{
		Value: value.Display,
		Rank:  value.RankDisplay,
		Tier:  string(value.Tier),
	}
}

func leaderToDTO(item roster.CategoryLeader) leaderDTO {
	out := leaderDTO{
		Category: string(item.Category),
		Value:    teamstats.NotAvailable,
		Found:    item.Found,
	}
	if !item.Found {
		return out
	}
	out.PlayerName = item.Entry.PlayerName
	out.TeamCode = item.Entry.TeamCode
	out.RawValue = item.Value
	out.Value = teamstats.FormatValue(&item.Value, 1)
	return out
}

func standingToDTO(record standing.Record) standingDTO {
	return standingDTO{
		TeamCode: record.TeamCode,
		TeamName: record.TeamName,
		Season:   record.Season,
		Phase:    record.Phase,
		Position: record.Position,
		Wins:     record.Wins,
		Losses:   record.Losses,
		Record:   record.Label(),
	}
}

func browserViewToDTO(view usecase.BrowserView) browserViewDTO {
	out := browserViewDTO{
		ID:          view.ID,
		League:      leagueToDTO(view.League),
		Season:      view.Season,
		Timezone:    locationName(view.Location),
		Rounds:      nonNilInts(view.Rounds),
		Round:       view.Round.Number,
		Segments:    segmentsToDTO(view.Round.Segments, view.Records),
		HasPrevious: view.HasPrevious,
		HasNext:     view.HasNext,
		Expansion: expansionDTO{
			Kind:     string(view.Expansion.Kind),
			Key:      view.Expansion.Key(),
			GameCode: view.Expansion.GameCode,
			Seq:      view.Expansion.Seq,
		},
		Loading: view.Loading,
	}
	if view.Log != nil {
		out.Log = &logViewDTO{
			GameCode:   view.Log.GameCode,
			HomeTeam:   view.Log.HomeTeam,
			AwayTeam:   view.Log.AwayTeam,
			ActiveTeam: view.Log.ActiveTeam,
			Rows:       boxScoreRowsToDTO(view.Log.Rows),
		}
	}
	if view.Preview != nil {
		preview := previewToDTO(*view.Preview)
		out.Preview = &preview
	}
	return out
}

func locationName(loc *time.Location) string {
	if loc == nil {
		return time.UTC.String()
	}
	return loc.String()
}

func nonNilInts(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}
