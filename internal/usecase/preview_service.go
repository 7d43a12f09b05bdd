package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

type PreviewConfig struct {
	// LeagueSize is the classification total used when standings are unavailable.
	LeagueSize int
}

type PreviewInput struct {
	League   string
	Season   int
	HomeTeam string
	AwayTeam string
}

type TeamPreview struct {
	TeamCode  string
	Stats     teamstats.AdvancedStats
	HasStats  bool
	Players   []roster.Entry
	Record    standing.Record
	HasRecord bool
}

// Preview compares two teams ahead of a game. Any source that failed to load
// leaves its part empty instead of failing the preview.
type Preview struct {
	League      league.League
	Season      int
	Phase       string
	TotalTeams  int
	Home        TeamPreview
	Away        TeamPreview
	Comparisons []teamstats.Comparison
	Leaders     []roster.CategoryLeader
}

type PreviewService struct {
	leagueRepo    league.Repository
	teamStatsRepo teamstats.Repository
	rosterRepo    roster.Repository
	standingRepo  standing.Repository
	cfg           PreviewConfig
	logger        *logging.Logger
}

func NewPreviewService(
	leagueRepo league.Repository,
	teamStatsRepo teamstats.Repository,
	rosterRepo roster.Repository,
	standingRepo standing.Repository,
	cfg PreviewConfig,
	logger *logging.Logger,
) *PreviewService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.LeagueSize <= 0 {
		cfg.LeagueSize = league.DefaultSize
	}

	return &PreviewService{
		leagueRepo:    leagueRepo,
		teamStatsRepo: teamStatsRepo,
		rosterRepo:    rosterRepo,
		standingRepo:  standingRepo,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *PreviewService) GetPreview(ctx context.Context, input PreviewInput) (Preview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreviewService.GetPreview")
	defer span.End()

	if err := validateSeason(input.Season); err != nil {
		return Preview{}, err
	}
	home, away := normalizeTeamCode(input.HomeTeam), normalizeTeamCode(input.AwayTeam)
	if home == "" || away == "" {
		return Preview{}, fmt.Errorf("%w: home and away teams are required", ErrInvalidInput)
	}
	if home == away {
		return Preview{}, fmt.Errorf("%w: home and away teams must differ", ErrInvalidInput)
	}
	lg, err := resolveLeague(ctx, s.leagueRepo, input.League)
	if err != nil {
		return Preview{}, err
	}

	return s.Build(ctx, lg, input.Season, home, away), nil
}

// Build runs the advanced stats, roster and standings reads concurrently.
func (s *PreviewService) Build(ctx context.Context, lg league.League, season int, homeCode, awayCode string) Preview {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreviewService.Build")
	defer span.End()

	out := Preview{
		League: lg,
		Season: season,
		Phase:  league.PhaseRegularSeason,
		Home:   TeamPreview{TeamCode: homeCode},
		Away:   TeamPreview{TeamCode: awayCode},
	}

	var records []standing.Record
	var wg conc.WaitGroup
	wg.Go(func() {
		out.Home.Stats, out.Home.HasStats = s.loadAdvancedStats(ctx, lg.Code, season, homeCode)
	})
	wg.Go(func() {
		out.Away.Stats, out.Away.HasStats = s.loadAdvancedStats(ctx, lg.Code, season, awayCode)
	})
	wg.Go(func() {
		out.Home.Players = s.loadRoster(ctx, lg.Code, season, homeCode)
	})
	wg.Go(func() {
		out.Away.Players = s.loadRoster(ctx, lg.Code, season, awayCode)
	})
	wg.Go(func() {
		records = s.loadStandings(ctx, lg.Code, season)
	})
	wg.Wait()

	out.TotalTeams = s.cfg.LeagueSize
	if len(records) > 0 {
		out.TotalTeams = len(records)
	}
	index := standing.Index(records)
	out.Home.Record, out.Home.HasRecord = index[homeCode]
	out.Away.Record, out.Away.HasRecord = index[awayCode]

	out.Comparisons = teamstats.Compare(out.Home.Stats, out.Away.Stats, out.TotalTeams)
	out.Leaders = roster.Leaders(out.Home.Players, out.Away.Players)
	return out
}

func (s *PreviewService) loadAdvancedStats(ctx context.Context, leagueCode league.Code, season int, teamCode string) (teamstats.AdvancedStats, bool) {
	stats, ok, err := s.teamStatsRepo.GetAdvancedStats(ctx, teamCode, season, league.PhaseRegularSeason, leagueCode)
	if err != nil {
		s.logger.WarnContext(ctx, "get team advanced stats failed",
			"league", leagueCode,
			"season", season,
			"team", teamCode,
			"error", err,
		)
		return teamstats.AdvancedStats{TeamCode: teamCode}, false
	}
	if !ok {
		return teamstats.AdvancedStats{TeamCode: teamCode}, false
	}
	return stats, true
}

// loadRoster retries without the phase filter when the regular season has no rows.
func (s *PreviewService) loadRoster(ctx context.Context, leagueCode league.Code, season int, teamCode string) []roster.Entry {
	for _, phase := range []string{league.PhaseRegularSeason, ""} {
		entries, err := s.rosterRepo.ListByTeam(ctx, teamCode, season, phase, leagueCode)
		if err != nil {
			s.logger.WarnContext(ctx, "list team players failed",
				"league", leagueCode,
				"season", season,
				"team", teamCode,
				"phase", phase,
				"error", err,
			)
			return nil
		}
		if len(entries) > 0 {
			return entries
		}
	}
	return nil
}

func (s *PreviewService) loadStandings(ctx context.Context, leagueCode league.Code, season int) []standing.Record {
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
	return records
}
