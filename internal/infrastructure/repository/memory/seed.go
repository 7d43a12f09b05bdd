package memory

import (
	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

// SeedSeason is the season every fixture belongs to.
const SeedSeason = 2025

// Fixtures is the sample dataset served by the memory data source and
// loaded into postgres by the seed command.
type Fixtures struct {
	Leagues   []league.League
	Games     map[league.Code][]schedule.Game
	BoxRows   map[league.Code][]boxscore.Row
	Stats     map[league.Code][]teamstats.AdvancedStats
	Rosters   map[league.Code][]roster.Entry
	Standings map[league.Code][]standing.Record
}

// Repositories bundles one memory repository per domain.
type Repositories struct {
	Leagues   *LeagueRepository
	Schedule  *ScheduleRepository
	BoxScores *BoxScoreRepository
	TeamStats *TeamStatsRepository
	Rosters   *RosterRepository
	Standings *StandingRepository
}

func SeedLeagues() []league.League {
	return []league.League{
		{Code: league.Euroleague, Name: "Euroleague", Slug: "international-euroleague", IsDefault: true},
		{Code: league.Eurocup, Name: "Eurocup", Slug: "international-eurocup"},
	}
}

func SeedFixtures() Fixtures {
	return Fixtures{
		Leagues: SeedLeagues(),
		Games: map[league.Code][]schedule.Game{
			league.Euroleague: euroleagueGames(),
			league.Eurocup:    eurocupGames(),
		},
		BoxRows: map[league.Code][]boxscore.Row{
			league.Euroleague: euroleagueBoxRows(),
		},
		Stats: map[league.Code][]teamstats.AdvancedStats{
			league.Euroleague: euroleagueStats(),
		},
		Rosters: map[league.Code][]roster.Entry{
			league.Euroleague: euroleagueRosters(),
		},
		Standings: map[league.Code][]standing.Record{
			league.Euroleague: euroleagueStandings(),
			league.Eurocup: {
				{TeamCode: "TTK", TeamName: "Turk Telekom Ankara", Season: SeedSeason, Phase: league.PhaseRegularSeason, Position: 1, Wins: 1},
				{TeamCode: "CLU", TeamName: "U-BT Cluj-Napoca", Season: SeedSeason, Phase: league.PhaseRegularSeason, Position: 2, Losses: 1},
			},
		},
	}
}

// NewRepositories loads fixtures into fresh memory repositories.
func NewRepositories(f Fixtures) Repositories {
	repos := Repositories{
		Leagues:   NewLeagueRepository(f.Leagues),
		Schedule:  NewScheduleRepository(),
		BoxScores: NewBoxScoreRepository(),
		TeamStats: NewTeamStatsRepository(),
		Rosters:   NewRosterRepository(),
		Standings: NewStandingRepository(),
	}

	for code, games := range f.Games {
		repos.Schedule.Add(code, games...)
	}
	for code, rows := range f.BoxRows {
		repos.BoxScores.Add(code, SeedSeason, rows...)
	}
	for code, stats := range f.Stats {
		repos.TeamStats.Add(code, stats...)
	}
	for code, entries := range f.Rosters {
		repos.Rosters.Add(code, entries...)
	}
	for code, records := range f.Standings {
		repos.Standings.Add(code, records...)
	}

	return repos
}

type seedTeam struct {
	code string
	name string
}

var euroleagueTeams = map[string]seedTeam{
	"MAD": {code: "MAD", name: "Real Madrid"},
	"ULK": {code: "ULK", name: "Fenerbahce Beko Istanbul"},
	"PAN": {code: "PAN", name: "Panathinaikos AKTOR Athens"},
	"OLY": {code: "OLY", name: "Olympiacos Piraeus"},
	"BAR": {code: "BAR", name: "FC Barcelona"},
	"MCO": {code: "MCO", name: "AS Monaco"},
}

func logoURL(code string) string {
	return "https://media-cdn.incrowdsports.com/" + code + ".png"
}

func seedGame(round int, date, clock, home, away string) schedule.Game {
	h, a := euroleagueTeams[home], euroleagueTeams[away]
	return schedule.Game{
		Season:       SeedSeason,
		Phase:        league.PhaseRegularSeason,
		Round:        round,
		Date:         date,
		Time:         clock,
		HomeTeam:     h.name,
		HomeTeamCode: h.code,
		HomeTeamLogo: logoURL(h.code),
		AwayTeam:     a.name,
		AwayTeamCode: a.code,
		AwayTeamLogo: logoURL(a.code),
	}
}

func played(game schedule.Game, gameCode string, home, away int) schedule.Game {
	game.GameCode = gameCode
	game.HomeScore = &home
	game.AwayScore = &away
	game.IsPlayed = true
	return game
}

func euroleagueGames() []schedule.Game {
	tbd := seedGame(3, "2025-10-16T00:00:00", "", "MCO", "BAR")
	fallback := seedGame(3, "2025-10-16T00:00:00", schedule.PlaceholderTime, "OLY", "ULK")
	fallback.GameTime = "17:15:00"

	return []schedule.Game{
		played(seedGame(1, "2025-09-30T00:00:00", "19:00:00", "MAD", "ULK"), "1", 86, 81),
		played(seedGame(1, "2025-10-01T00:00:00", "18:15:00", "PAN", "OLY"), "2", 78, 80),
		played(seedGame(1, "2025-10-01T00:00:00", "18:30:00", "BAR", "MCO"), "3", 92, 88),
		played(seedGame(2, "2025-10-07T00:00:00", "17:45:00", "ULK", "PAN"), "4", 90, 84),
		played(seedGame(2, "2025-10-08T00:00:00", "18:15:00", "OLY", "BAR"), "5", 95, 79),
		played(seedGame(2, "2025-10-08T00:00:00", "18:00:00", "MCO", "MAD"), "6", 83, 85),
		seedGame(3, "2025-10-15T00:00:00", "19:00:00", "MAD", "PAN"),
		fallback,
		tbd,
	}
}

func eurocupGames() []schedule.Game {
	home := 88
	away := 74
	return []schedule.Game{
		{
			Season:       SeedSeason,
			Phase:        league.PhaseRegularSeason,
			Round:        1,
			Date:         "2025-10-01T00:00:00",
			Time:         "16:00:00",
			HomeTeam:     "Turk Telekom Ankara",
			HomeTeamCode: "TTK",
			HomeTeamLogo: logoURL("TTK"),
			AwayTeam:     "U-BT Cluj-Napoca",
			AwayTeamCode: "CLU",
			AwayTeamLogo: logoURL("CLU"),
			HomeScore:    &home,
			AwayScore:    &away,
			IsPlayed:     true,
			GameCode:     "1",
		},
		{
			Season:       SeedSeason,
			Phase:        league.PhaseRegularSeason,
			Round:        2,
			Date:         "2025-10-08T00:00:00",
			Time:         "17:00:00",
			HomeTeam:     "U-BT Cluj-Napoca",
			HomeTeamCode: "CLU",
			HomeTeamLogo: logoURL("CLU"),
			AwayTeam:     "Turk Telekom Ankara",
			AwayTeamCode: "TTK",
			AwayTeamLogo: logoURL("TTK"),
		},
	}
}

func playerLine(gameCode, team, player string, starter bool, minutes string, points, rebounds, assists, valuation int) boxscore.Row {
	row := boxscore.NewRow(gameCode, team, player)
	row.IsStarter = starter
	row.Minutes = minutes
	row.Points = points
	row.TotalRebounds = rebounds
	row.Assists = assists
	row.Valuation = valuation
	return row
}

func euroleagueBoxRows() []boxscore.Row {
	return []boxscore.Row{
		playerLine("1", "MAD", "LLULL, SERGIO", false, "18:40", 9, 1, 4, 8),
		playerLine("1", "MAD", "TAVARES, WALTER", true, "24:12", 14, 11, 1, 24),
		playerLine("1", "MAD", "CAMPAZZO, FACUNDO", true, "29:05", 21, 3, 7, 25),
		playerLine("1", "MAD", "HEZONJA, MARIO", true, "27:30", 14, 5, 2, 13),
		playerLine("1", "MAD", "Team", false, "", 0, 4, 0, 0),
		playerLine("1", "MAD", "Total", false, "200:00", 86, 37, 18, 96),
		playerLine("1", "ULK", "HORTON-TUCKER, TALEN", true, "30:11", 22, 4, 3, 17),
		playerLine("1", "ULK", "MELLI, NICOLO", true, "25:48", 11, 8, 2, 15),
		playerLine("1", "ULK", "WILBEKIN, SCOTTIE", true, "28:02", 16, 2, 5, 12),
		playerLine("1", "ULK", "Team", false, "", 0, 3, 0, 0),
		playerLine("1", "ULK", "Total", false, "200:00", 81, 33, 15, 78),
		playerLine("2", "PAN", "NUNN, KENDRICK", true, "31:20", 24, 4, 5, 20),
		playerLine("2", "PAN", "Total", false, "200:00", 78, 35, 17, 80),
		playerLine("2", "OLY", "VEZENKOV, SASHA", true, "29:44", 20, 7, 1, 22),
		playerLine("2", "OLY", "Total", false, "200:00", 80, 36, 19, 88),
	}
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// advanced builds stats from values and ranks listed in teamstats.Metrics order.
func advanced(code string, games int, values [12]float64, ranks [12]int) teamstats.AdvancedStats {
	s := teamstats.AdvancedStats{
		TeamCode: code,
		TeamName: euroleagueTeams[code].name,
		Season:   SeedSeason,
		Phase:    league.PhaseRegularSeason,
		Games:    games,
	}
	vals := []**float64{&s.Pace, &s.EfficiencyO, &s.EfficiencyD, &s.NetRating, &s.EFGPctO, &s.EFGPctD, &s.TORatioO, &s.TORatioD, &s.ORebPctO, &s.ORebPctD, &s.FTRateO, &s.FTRateD}
	rks := []**int{&s.RankPace, &s.RankEfficiencyO, &s.RankEfficiencyD, &s.RankNetRating, &s.RankEFGPctO, &s.RankEFGPctD, &s.RankTORatioO, &s.RankTORatioD, &s.RankORebPctO, &s.RankORebPctD, &s.RankFTRateO, &s.RankFTRateD}
	for i := range vals {
		*vals[i] = floatPtr(values[i])
		*rks[i] = intPtr(ranks[i])
	}
	return s
}

func euroleagueStats() []teamstats.AdvancedStats {
	return []teamstats.AdvancedStats{
		advanced("MAD", 2, [12]float64{72.4, 118.2, 109.5, 8.7, 56.1, 51.2, 14.1, 16.3, 31.0, 27.4, 32.5, 28.0}, [12]int{3, 2, 5, 2, 3, 6, 4, 5, 7, 8, 6, 9}),
		advanced("ULK", 2, [12]float64{70.1, 115.6, 108.0, 7.6, 55.0, 50.8, 13.2, 15.1, 29.5, 28.1, 30.2, 27.1}, [12]int{8, 4, 3, 3, 5, 4, 2, 9, 10, 11, 9, 7}),
		advanced("PAN", 2, [12]float64{71.0, 112.3, 111.0, 1.3, 53.9, 52.5, 15.0, 14.8, 33.1, 26.0, 34.0, 29.4}, [12]int{6, 7, 9, 8, 8, 10, 9, 11, 3, 5, 2, 12}),
		advanced("OLY", 2, [12]float64{68.9, 120.4, 104.2, 16.2, 57.3, 49.0, 12.5, 17.2, 34.2, 24.9, 31.1, 25.5}, [12]int{14, 1, 1, 1, 1, 2, 1, 3, 2, 2, 4, 3}),
		advanced("BAR", 2, [12]float64{73.5, 110.8, 113.6, -2.8, 52.6, 54.0, 16.4, 13.9, 28.7, 30.3, 27.9, 31.8}, [12]int{1, 10, 13, 12, 11, 14, 14, 15, 12, 15, 13, 16}),
		advanced("MCO", 2, [12]float64{71.8, 109.9, 112.4, -2.5, 54.2, 53.1, 14.6, 15.5, 30.4, 29.0, 29.0, 30.0}, [12]int{4, 11, 11, 11, 7, 12, 7, 8, 8, 13, 11, 14}),
	}
}

func rosterEntry(team, playerCode, name string, games, points, rebounds, assists, threes any) roster.Entry {
	return roster.Entry{
		PlayerCode:        playerCode,
		PlayerName:        name,
		TeamCode:          team,
		TeamName:          euroleagueTeams[team].name,
		Season:            SeedSeason,
		Phase:             league.PhaseRegularSeason,
		GamesPlayed:       roster.Loose(games),
		Points:            roster.Loose(points),
		TotalRebounds:     roster.Loose(rebounds),
		Assists:           roster.Loose(assists),
		ThreePointersMade: roster.Loose(threes),
	}
}

func euroleagueRosters() []roster.Entry {
	return []roster.Entry{
		rosterEntry("MAD", "P003733", "CAMPAZZO, FACUNDO", 2, 19.5, 3.0, 6.5, 2.5),
		rosterEntry("MAD", "P002661", "TAVARES, WALTER", 2, 13.0, "10.5", 1.0, 0),
		rosterEntry("MAD", "P001331", "HEZONJA, MARIO", 2, 15.0, 5.5, 2.0, "3.0"),
		rosterEntry("ULK", "P007025", "HORTON-TUCKER, TALEN", 2, 20.5, 4.0, 3.5, 2.0),
		rosterEntry("ULK", "P002254", "MELLI, NICOLO", 2, "11.0", 7.5, 2.0, 1.0),
		rosterEntry("ULK", "P003840", "WILBEKIN, SCOTTIE", 2, 15.5, 2.0, 5.0, 3.5),
		rosterEntry("PAN", "P007100", "NUNN, KENDRICK", 2, 22.0, 4.5, 5.0, 3.0),
		rosterEntry("PAN", "P002235", "SLOUKAS, KOSTAS", 2, 10.0, 2.0, 6.5, nil),
		rosterEntry("OLY", "P004512", "VEZENKOV, SASHA", 2, 19.0, 7.0, 1.5, 2.5),
		rosterEntry("OLY", "P002345", "FOURNIER, EVAN", 2, 14.5, "n/a", 2.0, 3.0),
		rosterEntry("BAR", "P005611", "PUNTER, KEVIN", 2, 18.5, 2.5, 2.5, 3.0),
		rosterEntry("MCO", "P003121", "JAMES, MIKE", 2, 21.0, 3.0, 6.0, 2.5),
	}
}

func euroleagueStandings() []standing.Record {
	record := func(position int, code string, wins, losses int) standing.Record {
		return standing.Record{
			TeamCode: code,
			TeamName: euroleagueTeams[code].name,
			Season:   SeedSeason,
			Phase:    league.PhaseRegularSeason,
			Position: position,
			Wins:     wins,
			Losses:   losses,
		}
	}
	return []standing.Record{
		record(1, "MAD", 2, 0),
		record(2, "OLY", 2, 0),
		record(3, "BAR", 1, 1),
		record(4, "ULK", 1, 1),
		record(5, "PAN", 0, 2),
		record(6, "MCO", 0, 2),
	}
}
