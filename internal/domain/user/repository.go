package user

import "context"

// Repository describes account persistence needs from use cases.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Create(ctx context.Context, item User) (User, error)
}
