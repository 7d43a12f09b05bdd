package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

type ScheduleConfig struct {
	CurrentSeason   int
	DefaultLocation *time.Location
}

type RoundIndex struct {
	League       league.League
	Season       int
	Rounds       []int
	DefaultRound int
}

type GetRoundInput struct {
	League   string
	Season   int
	Round    int
	Timezone string
}

type RoundView struct {
	League   league.League
	Season   int
	Rounds   []int
	Round    schedule.Round
	Location *time.Location
	// Records holds W-L by team code for teams in unplayed games.
	Records map[string]standing.Record
}

type ScheduleService struct {
	leagueRepo   league.Repository
	gameRepo     schedule.Repository
	standingRepo standing.Repository
	cfg          ScheduleConfig
	logger       *logging.Logger
}

func NewScheduleService(
	leagueRepo league.Repository,
	gameRepo schedule.Repository,
	standingRepo standing.Repository,
	cfg ScheduleConfig,
	logger *logging.Logger,
) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DefaultLocation == nil {
		cfg.DefaultLocation = time.UTC
	}

	return &ScheduleService{
		leagueRepo:   leagueRepo,
		gameRepo:     gameRepo,
		standingRepo: standingRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *ScheduleService) ListRounds(ctx context.Context, leagueRaw string, season int) (RoundIndex, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListRounds")
	defer span.End()

	if err := validateSeason(season); err != nil {
		return RoundIndex{}, err
	}
	lg, err := resolveLeague(ctx, s.leagueRepo, leagueRaw)
	if err != nil {
		return RoundIndex{}, err
	}

	games, err := s.gameRepo.ListGames(ctx, season, lg.Code)
	if err != nil {
		return RoundIndex{}, fmt.Errorf("list games: %w", err)
	}

	return RoundIndex{
		League:       lg,
		Season:       season,
		Rounds:       schedule.AvailableRounds(games),
		DefaultRound: schedule.DefaultRound(games, season, s.cfg.CurrentSeason),
	}, nil
}

func (s *ScheduleService) GetRound(ctx context.Context, input GetRoundInput) (RoundView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetRound")
	defer span.End()

	if err := validateSeason(input.Season); err != nil {
		return RoundView{}, err
	}
	if input.Round <= 0 {
		return RoundView{}, fmt.Errorf("%w: round must be positive", ErrInvalidInput)
	}
	loc, err := resolveLocation(input.Timezone, s.cfg.DefaultLocation)
	if err != nil {
		return RoundView{}, err
	}
	lg, err := resolveLeague(ctx, s.leagueRepo, input.League)
	if err != nil {
		return RoundView{}, err
	}

	games, err := s.gameRepo.ListGames(ctx, input.Season, lg.Code)
	if err != nil {
		return RoundView{}, fmt.Errorf("list games: %w", err)
	}

	round := s.groupRound(ctx, games, input.Round, loc)
	return RoundView{
		League:   lg,
		Season:   input.Season,
		Rounds:   schedule.AvailableRounds(games),
		Round:    round,
		Location: loc,
		Records:  s.recordsForUnplayed(ctx, lg.Code, input.Season, round),
	}, nil
}

func (s *ScheduleService) groupRound(ctx context.Context, games []schedule.Game, round int, loc *time.Location) schedule.Round {
	grouped, err := schedule.GroupRound(games, round, loc)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve kickoff failed", "round", round, "error", err)
	}
	return grouped
}

// recordsForUnplayed loads standings only when the round still has games to play.
// Failures are logged and leave the records empty.
func (s *ScheduleService) recordsForUnplayed(ctx context.Context, leagueCode league.Code, season int, round schedule.Round) map[string]standing.Record {
	pending := false
	for _, item := range round.Games() {
		if !item.Game.IsPlayed {
			pending = true
			break
		}
	}
	if !pending || s.standingRepo == nil {
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

	index := standing.Index(records)
	out := make(map[string]standing.Record, len(index))
	for _, item := range round.Games() {
		if item.Game.IsPlayed {
			continue
		}
		for _, code := range []string{item.Game.HomeTeamCode, item.Game.AwayTeamCode} {
			if record, ok := index[code]; ok {
				out[code] = record
			}
		}
	}
	return out
}

// resolveLocation loads an IANA zone, falling back when tz is empty.
func resolveLocation(tz string, fallback *time.Location) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		if fallback == nil {
			return time.UTC, nil
		}
		return fallback, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, tz)
	}
	return loc, nil
}
