package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		HTTPAddr:            ":0",
		DataSource:          config.DataSourceMemory,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
		CurrentSeason:       2025,
		DisplayLocation:     time.UTC,
		LeagueSize:          18,
		BrowserSessionTTL:   time.Minute,
		BrowserWorkers:      2,
		BrowserFetchTimeout: time.Second,
		CORSAllowedOrigins:  []string{"*"},
	}
}

func TestNewHTTPServer_MemorySource(t *testing.T) {
	app, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/euroleague/seasons/2025/rounds", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"default_round":3`) {
		t.Fatalf("unexpected rounds body: %s", rec.Body.String())
	}
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	if _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestOpenRepositories_UnknownSource(t *testing.T) {
	cfg := memoryConfig()
	cfg.DataSource = "mongo"

	if _, _, err := openRepositories(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown data source")
	}
}

func TestOpenRepositories_RemoteSourceUsesClientForEveryRepository(t *testing.T) {
	cfg := memoryConfig()
	cfg.DataSource = config.DataSourceRemote
	cfg.StatsAPIBaseURL = "http://127.0.0.1:1"
	cfg.StatsAPITimeout = time.Second

	repos, closeRepos, err := openRepositories(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open repositories: %v", err)
	}
	defer closeRepos()

	if repos.games == nil || repos.boxScores == nil || repos.teamStats == nil || repos.rosters == nil || repos.standings == nil {
		t.Fatalf("remote source left a repository unset: %+v", repos)
	}
}

func TestFormatDBQueryForTrace(t *testing.T) {
	got := formatDBQueryForTrace("  SELECT *\n\tFROM schedule_results_euroleague\n WHERE season = $1 ")
	if got != "SELECT * FROM schedule_results_euroleague WHERE season = $1" {
		t.Fatalf("unexpected formatted query: %q", got)
	}

	long := formatDBQueryForTrace(strings.Repeat("a", maxTracedQueryLength+10))
	if len(long) != maxTracedQueryLength+3 || !strings.HasSuffix(long, "...") {
		t.Fatalf("unexpected truncated length: %d", len(long))
	}
}
