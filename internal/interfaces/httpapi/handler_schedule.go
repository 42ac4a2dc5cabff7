package httpapi

import (
	"net/http"
)

// GetTeamMatches extracts recent results and the upcoming fixture from one
// team page, identified by the url query parameter.
func (h *Handler) GetTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamMatches")
	defer span.End()

	item, err := h.scheduleService.GetTeamSchedule(ctx, r.URL.Query().Get("url"))
	if err != nil {
		h.logger.WarnContext(ctx, "team schedule fetch failed", "error", err.Error())
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamScheduleResponse(item))
}

// ListFavoriteSchedules fans out one schedule fetch per favorite team of the
// logged-in user. Per-team failures are reported inline, not as a request
// failure.
func (h *Handler) ListFavoriteSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavoriteSchedules")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeInternalError(ctx, w)
		return
	}

	items, err := h.scheduleService.ListForFavorites(ctx, principal.UserID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFavoriteScheduleResponses(items))
}
