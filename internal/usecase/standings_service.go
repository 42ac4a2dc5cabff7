package usecase

import (
	"context"

	"github.com/footballower/backend/internal/domain/standings"
	"github.com/footballower/backend/internal/domain/teaminfo"
	"github.com/footballower/backend/internal/platform/logging"
)

// StandingsFetcher extracts raw league table rows from the upstream page.
type StandingsFetcher interface {
	FetchStandings(ctx context.Context) ([]standings.Row, error)
}

// StandingsService runs the standings pipeline: scrape, then merge against
// the static reference catalog.
type StandingsService struct {
	fetcher        StandingsFetcher
	profilesByName map[string]teaminfo.TeamProfile
	logger         *logging.Logger
}

func NewStandingsService(fetcher StandingsFetcher, profiles []teaminfo.TeamProfile, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		fetcher:        fetcher,
		profilesByName: teaminfo.IndexByName(profiles),
		logger:         logger,
	}
}

// List is fail-soft: any fetch or parse failure is logged and an empty
// slice comes back. Callers cannot distinguish an empty table from a broken
// upstream; the response stays 200 either way.
func (s *StandingsService) List(ctx context.Context) []standings.EnrichedRow {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.List")
	defer span.End()

	rows, err := s.fetcher.FetchStandings(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch standings failed", "error", err)
		return []standings.EnrichedRow{}
	}

	return MergeStandings(rows, s.profilesByName)
}

// MergeStandings joins scraped rows against the reference catalog by exact
// team name. One output row per input row, in input order; unmatched rows
// pass through with a nil profile. Neither input is mutated.
func MergeStandings(rows []standings.Row, profilesByName map[string]teaminfo.TeamProfile) []standings.EnrichedRow {
	out := make([]standings.EnrichedRow, 0, len(rows))
	for _, row := range rows {
		enriched := standings.EnrichedRow{Row: row}
		if profile, ok := profilesByName[row.Team]; ok {
			enriched.Profile = &profile
		}
		out = append(out, enriched)
	}

	return out
}
