package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/courtside/external/statsapi"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	cacherepo "github.com/riskibarqy/courtside/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
)

type repositories struct {
	leagues   league.Repository
	games     schedule.Repository
	boxScores boxscore.Repository
	teamStats teamstats.Repository
	rosters   roster.Repository
	standings standing.Repository
}

func noopCloser() error { return nil }

// openRepositories selects the configured data source. The league catalog
// is static for every source.
func openRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())

	switch cfg.DataSource {
	case config.DataSourceMemory:
		mem := memory.NewRepositories(memory.SeedFixtures())
		return repositories{
			leagues:   leagues,
			games:     mem.Schedule,
			boxScores: mem.BoxScores,
			teamStats: mem.TeamStats,
			rosters:   mem.Rosters,
			standings: mem.Standings,
		}, noopCloser, nil
	case config.DataSourcePostgres:
		db, err := openDatabase(cfg, logger)
		if err != nil {
			return repositories{}, nil, err
		}
		return repositories{
			leagues:   leagues,
			games:     postgres.NewScheduleRepository(db),
			boxScores: postgres.NewBoxScoreRepository(db),
			teamStats: postgres.NewTeamStatsRepository(db),
			rosters:   postgres.NewRosterRepository(db),
			standings: postgres.NewStandingRepository(db),
		}, db.Close, nil
	case config.DataSourceRemote:
		client := statsapi.NewClient(statsapi.ClientConfig{
			HTTPClient:     &http.Client{Timeout: cfg.StatsAPITimeout},
			BaseURL:        cfg.StatsAPIBaseURL,
			Token:          cfg.StatsAPIToken,
			Timeout:        cfg.StatsAPITimeout,
			MaxRetries:     cfg.StatsAPIMaxRetries,
			InitialBackoff: cfg.StatsAPIInitialBackoff,
			Logger:         logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.StatsAPICircuitEnabled,
				FailureThreshold: cfg.StatsAPICircuitFailureCount,
				OpenTimeout:      cfg.StatsAPICircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.StatsAPICircuitHalfOpenMaxReq,
			},
		})
		logger.Info("stats api data source", "base_url", cfg.StatsAPIBaseURL, "max_retries", cfg.StatsAPIMaxRetries)
		return repositories{
			leagues:   leagues,
			games:     client,
			boxScores: client,
			teamStats: client,
			rosters:   client,
			standings: client,
		}, noopCloser, nil
	default:
		return repositories{}, nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}

func (r repositories) cached(store *cache.Store) repositories {
	return repositories{
		leagues:   cacherepo.NewLeagueRepository(r.leagues, store),
		games:     cacherepo.NewScheduleRepository(r.games, store),
		boxScores: cacherepo.NewBoxScoreRepository(r.boxScores, store),
		teamStats: cacherepo.NewTeamStatsRepository(r.teamStats, store),
		rosters:   cacherepo.NewRosterRepository(r.rosters, store),
		standings: cacherepo.NewStandingRepository(r.standings, store),
	}
}
