// Package cache decorates the read repositories with an in-process TTL cache.
// Slices are cloned on the way in and out so callers never share backing arrays.
package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/boxscore"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/roster"
	"github.com/riskibarqy/courtside/internal/domain/schedule"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	basecache "github.com/riskibarqy/courtside/internal/platform/cache"
)

func cacheKey(kind string, code league.Code, parts ...any) string {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte(':')
	b.WriteString(string(code))
	for _, p := range parts {
		b.WriteByte(':')
		switch v := p.(type) {
		case int:
			b.WriteString(strconv.Itoa(v))
		case string:
			b.WriteString(v)
		}
	}
	return b.String()
}

// optional carries a lookup result whose miss is cached as well.
type optional[T any] struct {
	value  T
	exists bool
}

func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		return slices.Clone(items), err
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func loadOptional[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	got, err := basecache.Load(ctx, store, key, func(ctx context.Context) (optional[T], error) {
		value, exists, err := load(ctx)
		return optional[T]{value: value, exists: exists}, err
	})
	return got.value, got.exists, err
}

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return loadSlice(ctx, r.cache, "league:list", r.next.List)
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code league.Code) (league.League, bool, error) {
	return loadOptional(ctx, r.cache, cacheKey("league", code), func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetByCode(ctx, code)
	})
}

type ScheduleRepository struct {
	next  schedule.Repository
	cache *basecache.Store
}

func NewScheduleRepository(next schedule.Repository, cache *basecache.Store) *ScheduleRepository {
	return &ScheduleRepository{next: next, cache: cache}
}

func (r *ScheduleRepository) ListGames(ctx context.Context, season int, leagueCode league.Code) ([]schedule.Game, error) {
	return loadSlice(ctx, r.cache, cacheKey("games", leagueCode, season), func(ctx context.Context) ([]schedule.Game, error) {
		return r.next.ListGames(ctx, season, leagueCode)
	})
}

type BoxScoreRepository struct {
	next  boxscore.Repository
	cache *basecache.Store
}

func NewBoxScoreRepository(next boxscore.Repository, cache *basecache.Store) *BoxScoreRepository {
	return &BoxScoreRepository{next: next, cache: cache}
}

func (r *BoxScoreRepository) ListRowsByGame(ctx context.Context, season int, gameCode string, leagueCode league.Code) ([]boxscore.Row, error) {
	return loadSlice(ctx, r.cache, cacheKey("boxscore", leagueCode, season, gameCode), func(ctx context.Context) ([]boxscore.Row, error) {
		return r.next.ListRowsByGame(ctx, season, gameCode, leagueCode)
	})
}

type TeamStatsRepository struct {
	next  teamstats.Repository
	cache *basecache.Store
}

func NewTeamStatsRepository(next teamstats.Repository, cache *basecache.Store) *TeamStatsRepository {
	return &TeamStatsRepository{next: next, cache: cache}
}

func (r *TeamStatsRepository) GetAdvancedStats(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) (teamstats.AdvancedStats, bool, error) {
	return loadOptional(ctx, r.cache, cacheKey("teamstats", leagueCode, season, phase, teamCode), func(ctx context.Context) (teamstats.AdvancedStats, bool, error) {
		return r.next.GetAdvancedStats(ctx, teamCode, season, phase, leagueCode)
	})
}

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ListByTeam(ctx context.Context, teamCode string, season int, phase string, leagueCode league.Code) ([]roster.Entry, error) {
	return loadSlice(ctx, r.cache, cacheKey("roster", leagueCode, season, phase, teamCode), func(ctx context.Context) ([]roster.Entry, error) {
		return r.next.ListByTeam(ctx, teamCode, season, phase, leagueCode)
	})
}

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, season int, phase string, leagueCode league.Code) ([]standing.Record, error) {
	return loadSlice(ctx, r.cache, cacheKey("standings", leagueCode, season, phase), func(ctx context.Context) ([]standing.Record, error) {
		return r.next.ListBySeason(ctx, season, phase, leagueCode)
	})
}
