package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/footballower/backend/internal/platform/logging"
	"github.com/footballower/backend/internal/usecase"
)

const sessionCookieName = "footballower_session"

// Handler exposes the HTTP surface: standings, team schedules, auth, and
// favorites.
type Handler struct {
	standingsService *usecase.StandingsService
	scheduleService  *usecase.ScheduleService
	authService      *usecase.AuthService
	favoriteService  *usecase.FavoriteService
	validate         *validator.Validate
	logger           *logging.Logger
	cookieSecure     bool
}

type HandlerConfig struct {
	StandingsService *usecase.StandingsService
	ScheduleService  *usecase.ScheduleService
	AuthService      *usecase.AuthService
	FavoriteService  *usecase.FavoriteService
	Logger           *logging.Logger
	CookieSecure     bool
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService: cfg.StandingsService,
		scheduleService:  cfg.ScheduleService,
		authService:      cfg.AuthService,
		favoriteService:  cfg.FavoriteService,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		logger:           logger,
		cookieSecure:     cfg.CookieSecure,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, messageResponse{Message: "ok"})
}

func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read request body", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: malformed json body", usecase.ErrInvalidInput)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	sameSite := http.SameSiteLaxMode
	if h.cookieSecure {
		// Cross-site frontend needs SameSite=None, which browsers only
		// accept together with Secure.
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: sameSite,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
	})
}
