package httpapi

import (
	"net/http"

	"github.com/footballower/backend/internal/platform/logging"
)

type RouterConfig struct {
	Handler            *Handler
	SessionVerifier    SessionVerifier
	Logger             *logging.Logger
	CORSAllowedOrigins []string
}

// NewRouter assembles the route table and wraps it with the shared
// middleware chain (tracing outermost so every other layer sees the span).
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, cfg.Handler, cfg.SessionVerifier)

	var root http.Handler = mux
	root = recoverPanic(logger, root)
	root = SecurityHeaders(root)
	root = CORS(cfg.CORSAllowedOrigins, root)
	root = RequestLogging(logger, root)
	root = RequestTracing(root)

	return root
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
				)
				writeInternalError(r.Context(), w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
