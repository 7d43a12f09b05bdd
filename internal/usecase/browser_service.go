package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/expansion"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/platform/id"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	browserSessionKeyPrefix    = "browser:session:"
	defaultBrowserFetchTimeout = 10 * time.Second
)

// Executor runs detail fetches off the request path. *ants.Pool satisfies it.
type Executor interface {
	Submit(task func()) error
}

// SessionStore keeps browser sessions between requests. *cache.Store satisfies it.
type SessionStore interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any)
	Delete(ctx context.Context, key string)
}

type BrowserConfig struct {
	CurrentSeason   int
	DefaultLocation *time.Location
	FetchTimeout    time.Duration
}

type OpenBrowserInput struct {
	League   string
	Season   int
	Timezone string
}

type ActivateGameInput struct {
	Round        int
	HomeTeamCode string
	AwayTeamCode string
}

type BrowserService struct {
	leagueRepo   league.Repository
	gameRepo     schedule.Repository
	boxRepo      boxscore.Repository
	standingRepo standing.Repository
	preview      *PreviewService
	sessions     SessionStore
	executor     Executor
	idGen        id.Generator
	cfg          BrowserConfig
	logger       *logging.Logger
}

func NewBrowserService(
	leagueRepo league.Repository,
	gameRepo schedule.Repository,
	boxRepo boxscore.Repository,
	standingRepo standing.Repository,
	preview *PreviewService,
	sessions SessionStore,
	executor Executor,
	idGen id.Generator,
	cfg BrowserConfig,
	logger *logging.Logger,
) *BrowserService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DefaultLocation == nil {
		cfg.DefaultLocation = time.UTC
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultBrowserFetchTimeout
	}

	return &BrowserService{
		leagueRepo:   leagueRepo,
		gameRepo:     gameRepo,
		boxRepo:      boxRepo,
		standingRepo: standingRepo,
		preview:      preview,
		sessions:     sessions,
		executor:     executor,
		idGen:        idGen,
		cfg:          cfg,
		logger:       logger,
	}
}

// Open starts a session on the default round of a season. A failed schedule
// read opens an empty browser instead of failing.
func (s *BrowserService) Open(ctx context.Context, input OpenBrowserInput) (BrowserView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowserService.Open",
		attribute.String("courtside.league", input.League),
		attribute.Int("courtside.season", input.Season),
	)
	defer span.End()

	if err := validateSeason(input.Season); err != nil {
		return BrowserView{}, err
	}
	loc, err := resolveLocation(input.Timezone, s.cfg.DefaultLocation)
	if err != nil {
		return BrowserView{}, err
	}
	lg, err := resolveLeague(ctx, s.leagueRepo, input.League)
	if err != nil {
		return BrowserView{}, err
	}

	sessionID, err := s.idGen.NewID()
	if err != nil {
		return BrowserView{}, fmt.Errorf("generate session id: %w", err)
	}

	games, err := s.gameRepo.ListGames(ctx, input.Season, lg.Code)
	if err != nil {
		s.logger.WarnContext(ctx, "list games failed",
			"league", lg.Code,
			"season", input.Season,
			"error", err,
		)
		games = nil
	}

	sess := &BrowserSession{
		ID:       sessionID,
		League:   lg,
		Season:   input.Season,
		Location: loc,
		games:    games,
		rounds:   schedule.AvailableRounds(games),
		records:  s.loadRecords(ctx, lg.Code, input.Season),
		state:    expansion.Closed(),
	}
	s.setRound(ctx, sess, schedule.DefaultRound(games, input.Season, s.cfg.CurrentSeason))
	s.sessions.Set(ctx, browserSessionKeyPrefix+sessionID, sess)

	s.logger.InfoContext(ctx, "browser session opened",
		"session_id", sessionID,
		"league", lg.Code,
		"season", input.Season,
		"games", len(games),
		"round", sess.round,
	)

	return sess.view(), nil
}

func (s *BrowserService) Get(ctx context.Context, sessionID string) (BrowserView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return BrowserView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// SelectRound jumps to a listed round and closes any open panel.
func (s *BrowserService) SelectRound(ctx context.Context, sessionID string, round int) (BrowserView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowserService.SelectRound",
		attribute.String("courtside.browser_session", sessionID),
		attribute.Int("courtside.round", round),
	)
	defer span.End()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return BrowserView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !schedule.HasRound(sess.rounds, round) {
		return BrowserView{}, fmt.Errorf("%w: round %d is not available", ErrInvalidInput, round)
	}
	s.setRound(ctx, sess, round)
	return sess.view(), nil
}

// NextRound moves forward one round; at the last round it changes nothing.
func (s *BrowserService) NextRound(ctx context.Context, sessionID string) (BrowserView, error) {
	return s.stepRound(ctx, sessionID, schedule.NextRound)
}

// PreviousRound moves back one round; at the first round it changes nothing.
func (s *BrowserService) PreviousRound(ctx context.Context, sessionID string) (BrowserView, error) {
	return s.stepRound(ctx, sessionID, schedule.PreviousRound)
}

func (s *BrowserService) stepRound(ctx context.Context, sessionID string, step func([]int, int) (int, bool)) (BrowserView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return BrowserView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if round, ok := step(sess.rounds, sess.round); ok {
		s.setRound(ctx, sess, round)
	}
	return sess.view(), nil
}

// ActivateGame toggles the detail panel of a game in the selected round and
// starts the fetch of its payload in the background.
func (s *BrowserService) ActivateGame(ctx context.Context, sessionID string, input ActivateGameInput) (BrowserView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowserService.ActivateGame",
		attribute.String("courtside.browser_session", sessionID),
		attribute.Int("courtside.round", input.Round),
	)
	defer span.End()

	home, away := normalizeTeamCode(input.HomeTeamCode), normalizeTeamCode(input.AwayTeamCode)
	if input.Round <= 0 || home == "" || away == "" {
		return BrowserView{}, fmt.Errorf("%w: round, home and away teams are required", ErrInvalidInput)
	}

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return BrowserView{}, err
	}

	sess.mu.Lock()
	if input.Round != sess.round {
		sess.mu.Unlock()
		return BrowserView{}, fmt.Errorf("%w: round=%d", ErrRoundNotActive, input.Round)
	}
	game, ok := sess.findGame(input.Round, home, away)
	if !ok {
		sess.mu.Unlock()
		return BrowserView{}, fmt.Errorf("%w: round=%d home=%s away=%s", ErrGameNotFound, input.Round, home, away)
	}

	next, effect := expansion.Activate(sess.state, game)
	sess.state = next
	sess.clearExpansion()
	if effect == expansion.EffectFetchLog {
		sess.log = &logPanel{
			gameCode:   game.GameCode,
			homeTeam:   game.HomeTeamCode,
			awayTeam:   game.AwayTeamCode,
			activeTeam: game.HomeTeamCode,
		}
	}
	if effect != expansion.EffectNone {
		sess.loading = true
		sess.begin()
	}
	selection := next.Selection()
	view := sess.view()
	sess.mu.Unlock()

	switch effect {
	case expansion.EffectFetchLog:
		s.dispatch(ctx, sess, selection, func(fetchCtx context.Context) func() {
			rows := s.fetchLogRows(fetchCtx, sess, game.GameCode)
			return func() { sess.log.rows = rows }
		})
	case expansion.EffectFetchPreview:
		s.dispatch(ctx, sess, selection, func(fetchCtx context.Context) func() {
			preview := s.preview.Build(fetchCtx, sess.League, sess.Season, game.HomeTeamCode, game.AwayTeamCode)
			return func() { sess.preview = &preview }
		})
	}

	return view, nil
}

// SetLogTeam switches the rows shown in the open box score without fetching.
func (s *BrowserService) SetLogTeam(ctx context.Context, sessionID, teamCode string) (BrowserView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return BrowserView{}, err
	}

	teamCode = normalizeTeamCode(teamCode)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.Kind != expansion.KindLog || sess.log == nil {
		return BrowserView{}, fmt.Errorf("%w: no box score is open", ErrInvalidInput)
	}
	if teamCode != sess.log.homeTeam && teamCode != sess.log.awayTeam {
		return BrowserView{}, fmt.Errorf("%w: team %s did not play game %s", ErrInvalidInput, teamCode, sess.log.gameCode)
	}
	sess.log.activeTeam = teamCode
	return sess.view(), nil
}

// Await blocks until no fetch of the session is in flight.
func (s *BrowserService) Await(ctx context.Context, sessionID string) (BrowserView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return BrowserView{}, err
	}

	for {
		sess.mu.Lock()
		if sess.inflight == 0 {
			view := sess.view()
			sess.mu.Unlock()
			return view, nil
		}
		idle := sess.idle
		sess.mu.Unlock()

		select {
		case <-ctx.Done():
			return BrowserView{}, ctx.Err()
		case <-idle:
		}
	}
}

func (s *BrowserService) Close(ctx context.Context, sessionID string) error {
	if _, err := s.session(ctx, sessionID); err != nil {
		return err
	}
	s.sessions.Delete(ctx, browserSessionKeyPrefix+strings.TrimSpace(sessionID))
	return nil
}

func (s *BrowserService) session(ctx context.Context, sessionID string) (*BrowserSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	key := browserSessionKeyPrefix + sessionID
	value, ok := s.sessions.Get(ctx, key)
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrSessionNotFound, sessionID)
	}
	sess, ok := value.(*BrowserSession)
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrSessionNotFound, sessionID)
	}

	// Refresh the idle expiry on every access.
	s.sessions.Set(ctx, key, sess)
	return sess, nil
}

// setRound must be called with sess.mu held.
func (s *BrowserService) setRound(ctx context.Context, sess *BrowserSession, round int) {
	sess.state = expansion.Close(sess.state)
	sess.clearExpansion()
	sess.round = round

	grouped, err := schedule.GroupRound(sess.games, round, sess.Location)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve kickoff failed",
			"session_id", sess.ID,
			"round", round,
			"error", err,
		)
	}
	sess.grouped = grouped
}

// dispatch runs fetch on the executor and commits its result only if the
// selection that issued it is still current.
func (s *BrowserService) dispatch(ctx context.Context, sess *BrowserSession, selection expansion.Selection, fetch func(context.Context) func()) {
	base := context.WithoutCancel(ctx)
	task := func() {
		fetchCtx, cancel := context.WithTimeout(base, s.cfg.FetchTimeout)
		defer cancel()

		apply := fetch(fetchCtx)
		s.commit(base, sess, selection, apply)
	}

	if err := s.executor.Submit(task); err != nil {
		s.logger.WarnContext(ctx, "submit browser fetch failed",
			"session_id", sess.ID,
			"selection", selection.Key,
			"error", err,
		)
		s.commit(base, sess, selection, nil)
	}
}

func (s *BrowserService) commit(ctx context.Context, sess *BrowserSession, selection expansion.Selection, apply func()) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	defer sess.finish()

	if !sess.state.IsCurrent(selection) {
		s.logger.DebugContext(ctx, "discard stale browser fetch",
			"session_id", sess.ID,
			"selection", selection.Key,
			"seq", selection.Seq,
			"current", sess.state.Key(),
		)
		return
	}
	if apply != nil {
		apply()
	}
	sess.loading = false
}

func (s *BrowserService) fetchLogRows(ctx context.Context, sess *BrowserSession, gameCode string) []boxscore.Row {
	rows, err := s.boxRepo.ListRowsByGame(ctx, sess.Season, gameCode, sess.League.Code)
	if err != nil {
		s.logger.WarnContext(ctx, "list game log rows failed",
			"session_id", sess.ID,
			"league", sess.League.Code,
			"season", sess.Season,
			"game_code", gameCode,
			"error", err,
		)
		return nil
	}
	return rows
}

func (s *BrowserService) loadRecords(ctx context.Context, leagueCode league.Code, season int) map[string]standing.Record {
	if s.standingRepo == nil {
		return nil
	}
	records, err := s.standingRepo.ListBySeason(ctx, season, league.PhaseRegularSeason, leagueCode)
	if err != nil {
		s.logger.WarnContext(ctx, "list standings failed",
			"league", leagueCode,
			"season", season,
			"error", err,
		)
		return nil
	}
	return standing.Index(records)
}
