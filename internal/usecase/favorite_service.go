package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/footballower/backend/internal/domain/favorite"
)

// FavoriteService is the favorite-teams CRUD over the relational store.
type FavoriteService struct {
	favoriteRepo favorite.Repository
}

func NewFavoriteService(favoriteRepo favorite.Repository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]favorite.Favorite, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.List")
	defer span.End()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return items, nil
}

func (s *FavoriteService) Add(ctx context.Context, userID int64, team string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.Add")
	defer span.End()

	team = strings.TrimSpace(team)
	if userID <= 0 || team == "" {
		return fmt.Errorf("%w: user id and team name are required", ErrInvalidInput)
	}

	if err := s.favoriteRepo.Add(ctx, favorite.Favorite{UserID: userID, Team: team}); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID int64, team string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.Remove")
	defer span.End()

	team = strings.TrimSpace(team)
	if userID <= 0 || team == "" {
		return fmt.Errorf("%w: user id and team name are required", ErrInvalidInput)
	}

	removed, err := s.favoriteRepo.Remove(ctx, userID, team)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: favorite team=%s", ErrNotFound, team)
	}

	return nil
}
