package memory

import (
	"context"
	"sync"

	"github.com/footballower/backend/internal/domain/favorite"
)

type FavoriteRepository struct {
	mu     sync.RWMutex
	byUser map[int64][]favorite.Favorite
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{byUser: make(map[int64][]favorite.Favorite)}
}

func (r *FavoriteRepository) ListByUser(_ context.Context, userID int64) ([]favorite.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byUser[userID]
	out := make([]favorite.Favorite, 0, len(items))
	out = append(out, items...)

	return out, nil
}

func (r *FavoriteRepository) Add(_ context.Context, item favorite.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byUser[item.UserID] {
		if existing.Team == item.Team {
			return nil
		}
	}
	r.byUser[item.UserID] = append(r.byUser[item.UserID], item)

	return nil
}

func (r *FavoriteRepository) Remove(_ context.Context, userID int64, team string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byUser[userID]
	for idx, existing := range items {
		if existing.Team == team {
			r.byUser[userID] = append(items[:idx], items[idx+1:]...)
			return true, nil
		}
	}

	return false, nil
}
