package httpapi

import "net/http"

func registerRoutes(mux *http.ServeMux, h *Handler, verifier SessionVerifier) {
	requireSession := func(next http.HandlerFunc) http.Handler {
		return RequireSession(verifier, next)
	}

	mux.HandleFunc("GET /healthz", h.Healthz)

	mux.HandleFunc("GET /v1/standings", h.GetStandings)
	mux.HandleFunc("GET /v1/matches", h.GetTeamMatches)

	mux.HandleFunc("POST /v1/auth/register", h.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.Handle("POST /v1/auth/logout", requireSession(h.Logout))

	mux.Handle("GET /v1/favorites", requireSession(h.ListFavorites))
	mux.Handle("POST /v1/favorites", requireSession(h.AddFavorite))
	mux.Handle("DELETE /v1/favorites", requireSession(h.RemoveFavorite))
	mux.Handle("GET /v1/favorites/schedules", requireSession(h.ListFavoriteSchedules))
}
