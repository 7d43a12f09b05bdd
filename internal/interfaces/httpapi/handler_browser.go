package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/courtside/internal/usecase"
)

type openBrowserRequest struct {
	League   string `json:"league" validate:"required"`
	Season   int    `json:"season" validate:"required,gt=0"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

type selectRoundRequest struct {
	Round int `json:"round" validate:"required,gt=0"`
}

type activateGameRequest struct {
	Round        int    `json:"round" validate:"required,gt=0"`
	HomeTeamCode string `json:"home_team_code" validate:"required,max=16"`
	AwayTeamCode string `json:"away_team_code" validate:"required,max=16,nefield=HomeTeamCode"`
}

type logTeamRequest struct {
	TeamCode string `json:"team_code" validate:"required,max=16"`
}

func (h *Handler) OpenBrowser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.OpenBrowser")
	defer span.End()

	var req openBrowserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.browserService.Open(ctx, usecase.OpenBrowserInput{
		League:   req.League,
		Season:   req.Season,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "open browser failed", "league", req.League, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, browserViewToDTO(view))
}

func (h *Handler) GetBrowser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetBrowser")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	var (
		view usecase.BrowserView
		err  error
	)
	if queryBool(r, "wait") {
		view, err = h.browserService.Await(ctx, sessionID)
	} else {
		view, err = h.browserService.Get(ctx, sessionID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "get browser failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, browserViewToDTO(view))
}

func (h *Handler) SelectBrowserRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SelectBrowserRound")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	var req selectRoundRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.browserService.SelectRound(ctx, sessionID, req.Round)
	if err != nil {
		h.logger.WarnContext(ctx, "select round failed", "session_id", sessionID, "round", req.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, browserViewToDTO(view))
}

func (h *Handler) NextBrowserRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.NextBrowserRound")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	view, err := h.browserService.NextRound(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "next round failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, browserViewToDTO(view))
}

func (h *Handler) PreviousBrowserRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.PreviousBrowserRound")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	view, err := h.browserService.PreviousRound(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "previous round failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, browserViewToDTO(view))
}

// ActivateGame toggles the detail panel of a game. With ?wait=true the
// response waits for the panel's data.
func (h *Handler) ActivateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ActivateGame")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	var req activateGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.browserService.ActivateGame(ctx, sessionID, usecase.ActivateGameInput{
		Round:        req.Round,
		HomeTeamCode: req.HomeTeamCode,
		AwayTeamCode: req.AwayTeamCode,
	})
	if err == nil && queryBool(r, "wait") {
		view, err = h.browserService.Await(ctx, sessionID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "activate game failed",
			"session_id", sessionID,
			"round", req.Round,
			"home", req.HomeTeamCode,
			"away", req.AwayTeamCode,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, browserViewToDTO(view))
}

func (h *Handler) SetBrowserLogTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SetBrowserLogTeam")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	var req logTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.browserService.SetLogTeam(ctx, sessionID, req.TeamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "set log team failed", "session_id", sessionID, "team_code", req.TeamCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, browserViewToDTO(view))
}

func (h *Handler) CloseBrowser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CloseBrowser")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	if err := h.browserService.Close(ctx, sessionID); err != nil {
		h.logger.WarnContext(ctx, "close browser failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": sessionID, "status": "closed"})
}
