package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/rounds/{round}", handler.GetRound)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/games/{gameCode}/boxscore", handler.GetBoxScore)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/preview", handler.GetPreview)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/standings", handler.ListStandings)
}

// Round browser sessions. Every command returns the session view.
func registerBrowserRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/browser/sessions", handler.OpenBrowser)
	mux.HandleFunc("GET /v1/browser/sessions/{sessionID}", handler.GetBrowser)
	mux.HandleFunc("DELETE /v1/browser/sessions/{sessionID}", handler.CloseBrowser)
	mux.HandleFunc("PUT /v1/browser/sessions/{sessionID}/round", handler.SelectBrowserRound)
	mux.HandleFunc("POST /v1/browser/sessions/{sessionID}/round/next", handler.NextBrowserRound)
	mux.HandleFunc("POST /v1/browser/sessions/{sessionID}/round/previous", handler.PreviousBrowserRound)
	mux.HandleFunc("POST /v1/browser/sessions/{sessionID}/activate", handler.ActivateGame)
	mux.HandleFunc("PUT /v1/browser/sessions/{sessionID}/log-team", handler.SetBrowserLogTeam)
}
