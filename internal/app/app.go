package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/interfaces/httpapi"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	idgen "github.com/riskibarqy/courtside/internal/platform/id"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

const browserSessionKeyspace = "browser sessions"

// App owns the HTTP server and the resources it depends on.
type App struct {
	Server  *http.Server
	closers []func() error
	cancel  context.CancelFunc
	logger  *logging.Logger
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app := &App{logger: logger}
	ok := false
	defer func() {
		if !ok {
			app.Close()
		}
	}()

	repos, closeRepos, err := openRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, closeRepos)

	janitorCtx, cancel := context.WithCancel(ctx)
	app.cancel = cancel

	if cfg.CacheEnabled {
		reads := cache.NewStore(cfg.CacheTTL)
		repos = repos.cached(reads)
		go reads.RunJanitor(janitorCtx, cfg.CacheTTL, func(removed int) {
			logger.Debug("expired reads swept", "removed", removed, "remaining", reads.Len())
		})
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	pool, err := ants.NewPool(cfg.BrowserWorkers)
	if err != nil {
		return nil, fmt.Errorf("create browser worker pool: %w", err)
	}
	app.closers = append(app.closers, func() error {
		pool.Release()
		return nil
	})

	sessions := cache.NewStore(cfg.BrowserSessionTTL)
	go sessions.RunJanitor(janitorCtx, cfg.BrowserSessionTTL/2, func(removed int) {
		logger.Debug("expired sessions swept", "keyspace", browserSessionKeyspace, "removed", removed, "remaining", sessions.Len())
	})

	leagueSvc := usecase.NewLeagueService(repos.leagues)
	scheduleSvc := usecase.NewScheduleService(
		repos.leagues,
		repos.games,
		repos.standings,
		usecase.ScheduleConfig{CurrentSeason: cfg.CurrentSeason, DefaultLocation: cfg.DisplayLocation},
		logger,
	)
	boxScoreSvc := usecase.NewBoxScoreService(repos.leagues, repos.boxScores)
	previewSvc := usecase.NewPreviewService(
		repos.leagues,
		repos.teamStats,
		repos.rosters,
		repos.standings,
		usecase.PreviewConfig{LeagueSize: cfg.LeagueSize},
		logger,
	)
	standingSvc := usecase.NewStandingService(repos.leagues, repos.standings)
	browserSvc := usecase.NewBrowserService(
		repos.leagues,
		repos.games,
		repos.boxScores,
		repos.standings,
		previewSvc,
		sessions,
		pool,
		idgen.NewSessionGenerator("bs"),
		usecase.BrowserConfig{
			CurrentSeason:   cfg.CurrentSeason,
			DefaultLocation: cfg.DisplayLocation,
			FetchTimeout:    cfg.BrowserFetchTimeout,
		},
		logger,
	)

	handler := httpapi.NewHandler(leagueSvc, scheduleSvc, boxScoreSvc, previewSvc, standingSvc, browserSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	ok = true

	logger.Info("app wired",
		"data_source", cfg.DataSource,
		"current_season", cfg.CurrentSeason,
		"display_timezone", cfg.DisplayLocation.String(),
		"browser_workers", cfg.BrowserWorkers,
	)
	return app, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("release app resource failed", "error", err)
		}
	}
	a.closers = nil
}
