package favorite

import "context"

// Repository describes favorite-team persistence needs from use cases.
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Favorite, error)
	Add(ctx context.Context, item Favorite) error
	// Remove reports whether a row existed for the user/team pair.
	Remove(ctx context.Context, userID int64, team string) (bool, error)
}
