package usecase

import (
	"sync"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/expansion"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
)

// BrowserSession is one viewer's round browser: the selected round and the single
// open detail panel with its payload. All fields are guarded by mu.
type BrowserSession struct {
	ID       string
	League   league.League
	Season   int
	Location *time.Location

	mu      sync.Mutex
	games   []schedule.Game
	rounds  []int
	round   int
	grouped schedule.Round
	records map[string]standing.Record

	state   expansion.State
	loading bool
	log     *logPanel
	preview *Preview

	inflight int
	idle     chan struct{}
}

type logPanel struct {
	gameCode   string
	homeTeam   string
	awayTeam   string
	activeTeam string
	rows       []boxscore.Row
}

// LogView is the open box score with the active team's rows laid out.
type LogView struct {
	GameCode   string
	HomeTeam   string
	AwayTeam   string
	ActiveTeam string
	Rows       []boxscore.Row
}

// BrowserView is a read-only snapshot of a session.
type BrowserView struct {
	ID          string
	League      league.League
	Season      int
	Location    *time.Location
	Rounds      []int
	Round       schedule.Round
	HasPrevious bool
	HasNext     bool
	Records     map[string]standing.Record
	Expansion   expansion.State
	Loading     bool
	Log         *LogView
	Preview     *Preview
}

func (s *BrowserSession) view() BrowserView {
	_, hasPrevious := schedule.PreviousRound(s.rounds, s.round)
	_, hasNext := schedule.NextRound(s.rounds, s.round)

	out := BrowserView{
		ID:          s.ID,
		League:      s.League,
		Season:      s.Season,
		Location:    s.Location,
		Rounds:      append([]int(nil), s.rounds...),
		Round:       s.grouped,
		HasPrevious: hasPrevious,
		HasNext:     hasNext,
		Records:     s.records,
		Expansion:   s.state,
		Loading:     s.loading,
	}
	if out.Round.Number == 0 {
		out.Round.Number = s.round
	}

	if s.log != nil {
		out.Log = &LogView{
			GameCode:   s.log.gameCode,
			HomeTeam:   s.log.homeTeam,
			AwayTeam:   s.log.awayTeam,
			ActiveTeam: s.log.activeTeam,
			Rows:       boxscore.Layout(s.log.rows, s.log.activeTeam),
		}
	}
	if s.preview != nil {
		preview := *s.preview
		out.Preview = &preview
	}
	return out
}

// clearExpansion drops every payload; callers set the next state.
func (s *BrowserSession) clearExpansion() {
	s.loading = false
	s.log = nil
	s.preview = nil
}

func (s *BrowserSession) findGame(round int, homeCode, awayCode string) (schedule.Game, bool) {
	key := schedule.MatchupKey{Round: round, HomeCode: homeCode, AwayCode: awayCode}
	for _, game := range s.games {
		if game.Matchup() == key {
			return game, true
		}
	}
	return schedule.Game{}, false
}

func (s *BrowserSession) begin() {
	if s.inflight == 0 {
		s.idle = make(chan struct{})
	}
	s.inflight++
}

func (s *BrowserSession) finish() {
	if s.inflight == 0 {
		return
	}
	s.inflight--
	if s.inflight == 0 && s.idle != nil {
		close(s.idle)
	}
}
