package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/footballower/backend/external/fctables"
	"github.com/footballower/backend/external/premierleague"
	"github.com/footballower/backend/internal/config"
	"github.com/footballower/backend/internal/domain/teaminfo"
	"github.com/footballower/backend/internal/infrastructure/repository/postgres"
	"github.com/footballower/backend/internal/infrastructure/sessionstore"
	"github.com/footballower/backend/internal/interfaces/httpapi"
	idgen "github.com/footballower/backend/internal/platform/id"
	"github.com/footballower/backend/internal/platform/logging"
	"github.com/footballower/backend/internal/usecase"
)

// NewHTTPServer wires the full service graph and returns the server plus a
// cleanup closing the shared resources behind it.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	sessions := sessionstore.New(cfg.SessionTTL, idgen.NewRandomGenerator())

	// Scrape clients share one transport so idle upstream connections stay
	// bounded across standings and schedule fetches.
	scrapeClient := &http.Client{
		Timeout: cfg.ScrapeTimeout,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: cfg.ScrapeMaxIdleConns,
		},
	}

	standingsClient := premierleague.NewClient(premierleague.ClientConfig{
		HTTPClient:   scrapeClient,
		StandingsURL: cfg.StandingsURL,
		Logger:       logger,
	})
	scheduleClient := fctables.NewClient(fctables.ClientConfig{
		HTTPClient: scrapeClient,
		Logger:     logger,
	})

	catalog := teaminfo.Catalog()
	standingsSvc := usecase.NewStandingsService(standingsClient, catalog, logger)
	scheduleSvc := usecase.NewScheduleService(scheduleClient, favoriteRepo, catalog, cfg.ScheduleWorkers, logger)
	authSvc := usecase.NewAuthService(userRepo, sessions, logger)
	favoriteSvc := usecase.NewFavoriteService(favoriteRepo)

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		StandingsService: standingsSvc,
		ScheduleService:  scheduleSvc,
		AuthService:      authSvc,
		FavoriteService:  favoriteSvc,
		Logger:           logger,
		CookieSecure:     cfg.SessionCookieSecure,
	})
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:            handler,
		SessionVerifier:    authSvc,
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() error {
		return db.Close()
	}

	return server, cleanup, nil
}
