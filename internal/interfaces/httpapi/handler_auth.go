package httpapi

import (
	"net/http"

	"github.com/footballower/backend/internal/usecase"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.Register(ctx, usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.setSessionCookie(w, item.Token, item.ExpiresAt)
	writeSuccess(ctx, w, http.StatusCreated, authResponse{Username: item.Principal.Username})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.setSessionCookie(w, item.Token, item.ExpiresAt)
	writeSuccess(ctx, w, http.StatusOK, authResponse{Username: item.Principal.Username})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.authService.Logout(ctx, cookie.Value); err != nil {
			h.logger.WarnContext(ctx, "logout failed", "error", err.Error())
		}
	}

	h.clearSessionCookie(w)
	writeSuccess(ctx, w, http.StatusOK, messageResponse{Message: "logged out"})
}
