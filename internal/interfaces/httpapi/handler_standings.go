package httpapi

import (
	"net/http"
)

// GetStandings returns the scraped league table enriched with the static
// team catalog. Scrape failures degrade to an empty list, never an error.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	rows := h.standingsService.List(ctx)
	writeSuccess(ctx, w, http.StatusOK, toStandingsResponse(rows))
}
