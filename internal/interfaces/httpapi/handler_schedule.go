package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/courtside/internal/usecase"
)

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListRounds")
	defer span.End()

	leagueRaw := r.PathValue("league")
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	index, err := h.scheduleService.ListRounds(ctx, leagueRaw, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "league", leagueRaw, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundIndexDTO{
		League:       leagueToDTO(index.League),
		Season:       index.Season,
		Rounds:       nonNilInts(index.Rounds),
		DefaultRound: index.DefaultRound,
	})
}

func (h *Handler) GetRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetRound")
	defer span.End()

	leagueRaw := r.PathValue("league")
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	round, err := pathInt(r, "round")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.scheduleService.GetRound(ctx, usecase.GetRoundInput{
		League:   leagueRaw,
		Season:   season,
		Round:    round,
		Timezone: strings.TrimSpace(r.URL.Query().Get("tz")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get round failed", "league", leagueRaw, "season", season, "round", round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundViewToDTO(view))
}

func (h *Handler) GetBoxScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetBoxScore")
	defer span.End()

	leagueRaw := r.PathValue("league")
	gameCode := strings.TrimSpace(r.PathValue("gameCode"))
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.boxScoreService.GetBoxScore(ctx, usecase.GetBoxScoreInput{
		League:   leagueRaw,
		Season:   season,
		GameCode: gameCode,
		TeamCode: r.URL.Query().Get("team"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get box score failed", "league", leagueRaw, "season", season, "game_code", gameCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boxScoreToDTO(view))
}

func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPreview")
	defer span.End()

	leagueRaw := r.PathValue("league")
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	preview, err := h.previewService.GetPreview(ctx, usecase.PreviewInput{
		League:   leagueRaw,
		Season:   season,
		HomeTeam: query.Get("home"),
		AwayTeam: query.Get("away"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get preview failed", "league", leagueRaw, "season", season, "home", query.Get("home"), "away", query.Get("away"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, previewToDTO(preview))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListStandings")
	defer span.End()

	leagueRaw := r.PathValue("league")
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.standingService.List(ctx, leagueRaw, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league", leagueRaw, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(records))
	for _, record := range records {
		items = append(items, standingToDTO(record))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
