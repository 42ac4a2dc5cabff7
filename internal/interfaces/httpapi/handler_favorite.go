package httpapi

import (
	"net/http"
)

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavorites")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeInternalError(ctx, w)
		return
	}

	items, err := h.favoriteService.List(ctx, principal.UserID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]favoriteResponse, 0, len(items))
	for _, item := range items {
		out = append(out, favoriteResponse{TeamName: item.Team})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFavorite")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeInternalError(ctx, w)
		return
	}

	var req favoriteRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.favoriteService.Add(ctx, principal.UserID, req.TeamName); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, favoriteResponse{TeamName: req.TeamName})
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFavorite")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeInternalError(ctx, w)
		return
	}

	var req favoriteRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.favoriteService.Remove(ctx, principal.UserID, req.TeamName); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageResponse{Message: "favorite removed"})
}
