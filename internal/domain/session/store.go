package session

import (
	"context"

	"github.com/footballower/backend/internal/domain/user"
)

// Store issues and resolves session tokens.
type Store interface {
	Issue(ctx context.Context, principal user.Principal) (Session, error)
	Get(ctx context.Context, token string) (Session, bool)
	Delete(ctx context.Context, token string)
}
