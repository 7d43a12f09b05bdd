package expansion

import (
	"fmt"

	"github.com/riskibarqy/courtside/internal/domain/schedule"
)

// Kind is the detail panel currently open.
type Kind string

const (
	KindClosed  Kind = "closed"
	KindLog     Kind = "log"
	KindPreview Kind = "preview"
)

// Selection tags a fetch with the state that issued it.
type Selection struct {
	Key string
	Seq uint64
}

// State is the single expansion of a round browser. At most one panel is open:
// a box score keyed by game code or a preview keyed by matchup.
// Seq grows on every transition so fetches issued by an older state can be told apart.
type State struct {
	Kind     Kind
	GameCode string
	Matchup  schedule.MatchupKey
	Seq      uint64
}

// Closed returns the initial state.
func Closed() State {
	return State{Kind: KindClosed}
}

func (s State) IsOpen() bool {
	return s.Kind == KindLog || s.Kind == KindPreview
}

// Key identifies the open panel, empty when closed.
func (s State) Key() string {
	switch s.Kind {
	case KindLog:
		return fmt.Sprintf("log:%s", s.GameCode)
	case KindPreview:
		return fmt.Sprintf("preview:%s", s.Matchup)
	default:
		return ""
	}
}

func (s State) Selection() Selection {
	return Selection{Key: s.Key(), Seq: s.Seq}
}

// IsCurrent reports whether a fetch tagged with sel may still commit.
func (s State) IsCurrent(sel Selection) bool {
	return s.IsOpen() && s.Key() == sel.Key && s.Seq == sel.Seq
}

// Effect is the fetch a transition asks the caller to start.
type Effect string

const (
	EffectNone         Effect = "none"
	EffectFetchLog     Effect = "fetch_log"
	EffectFetchPreview Effect = "fetch_preview"
)

// Activate applies a game activation to the current state.
// A played game with a code toggles its box score; any other game toggles its preview.
// Activating the open game closes it, activating another game replaces the open one.
func Activate(current State, game schedule.Game) (State, Effect) {
	next := State{Kind: KindClosed, Seq: current.Seq + 1}

	if game.HasBoxScore() {
		if current.Kind == KindLog && current.GameCode == game.GameCode {
			return next, EffectNone
		}
		next.Kind = KindLog
		next.GameCode = game.GameCode
		return next, EffectFetchLog
	}

	matchup := game.Matchup()
	if current.Kind == KindPreview && current.Matchup == matchup {
		return next, EffectNone
	}
	next.Kind = KindPreview
	next.Matchup = matchup
	return next, EffectFetchPreview
}

// Close forces the closed state, used when the round changes.
func Close(current State) State {
	return State{Kind: KindClosed, Seq: current.Seq + 1}
}
