package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/footballower/backend/internal/domain/favorite"
	"github.com/footballower/backend/internal/domain/schedule"
	"github.com/footballower/backend/internal/domain/teaminfo"
	"github.com/footballower/backend/internal/platform/logging"
)

const defaultScheduleWorkers = 4

// ScheduleFetcher extracts a team schedule from an fctables team page.
type ScheduleFetcher interface {
	FetchTeamSchedule(ctx context.Context, pageURL string) (schedule.TeamSchedule, error)
}

// FavoriteSchedule is one fan-out result. Exactly one of Schedule and
// Error is set; a failing team page never fails the whole request.
type FavoriteSchedule struct {
	Team     string
	Schedule *schedule.TeamSchedule
	Error    string
}

// ScheduleService runs the fixture/result pipeline for single team pages
// and for a user's whole favorites list.
type ScheduleService struct {
	fetcher        ScheduleFetcher
	favoriteRepo   favorite.Repository
	profilesByName map[string]teaminfo.TeamProfile
	workers        int
	logger         *logging.Logger
}

func NewScheduleService(
	fetcher ScheduleFetcher,
	favoriteRepo favorite.Repository,
	profiles []teaminfo.TeamProfile,
	workers int,
	logger *logging.Logger,
) *ScheduleService {
	if workers < 1 {
		workers = defaultScheduleWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ScheduleService{
		fetcher:        fetcher,
		favoriteRepo:   favoriteRepo,
		profilesByName: teaminfo.IndexByName(profiles),
		workers:        workers,
		logger:         logger,
	}
}

// GetTeamSchedule is fail-loud, unlike the standings path: the caller gets
// a distinct error for a broken upstream instead of an empty result.
func (s *ScheduleService) GetTeamSchedule(ctx context.Context, pageURL string) (schedule.TeamSchedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetTeamSchedule")
	defer span.End()

	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return schedule.TeamSchedule{}, fmt.Errorf("%w: team page url is required", ErrInvalidInput)
	}

	out, err := s.fetcher.FetchTeamSchedule(ctx, pageURL)
	if err != nil {
		return schedule.TeamSchedule{}, fmt.Errorf("%w: fetch team schedule: %v", ErrDependencyUnavailable, err)
	}

	return out, nil
}

// ListForFavorites fetches the schedule for every favorite of the user
// through a bounded worker pool, so a long favorites list cannot open an
// unbounded number of upstream connections. Output order follows the
// favorites list; per-team failures degrade to an error message.
func (s *ScheduleService) ListForFavorites(ctx context.Context, userID int64) ([]FavoriteSchedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListForFavorites")
	defer span.End()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if len(favorites) == 0 {
		return []FavoriteSchedule{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]FavoriteSchedule, len(favorites))

	var workers sync.WaitGroup
	for idx, fav := range favorites {
		idx, fav := idx, fav
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[idx] = s.fetchFavorite(ctx, fav.Team)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit schedule task: %w", err)
		}
	}
	workers.Wait()

	return results, nil
}

func (s *ScheduleService) fetchFavorite(ctx context.Context, team string) FavoriteSchedule {
	profile, ok := s.profilesByName[team]
	if !ok {
		return FavoriteSchedule{Team: team, Error: "team is not in the reference catalog"}
	}

	out, err := s.fetcher.FetchTeamSchedule(ctx, profile.ProfileURL)
	if err != nil {
		s.logger.WarnContext(ctx, "favorite schedule fetch failed", "team", team, "error", err)
		return FavoriteSchedule{Team: team, Error: err.Error()}
	}

	return FavoriteSchedule{Team: team, Schedule: &out}
}
