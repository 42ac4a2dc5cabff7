package sessionstore

import (
	"context"
	"fmt"
	"time"

	"github.com/footballower/backend/internal/domain/session"
	"github.com/footballower/backend/internal/domain/user"
	"github.com/footballower/backend/internal/platform/cache"
	"github.com/footballower/backend/internal/platform/id"
)

// Store keeps sessions in the in-process TTL store, keyed by opaque random
// tokens. Expiry is enforced both by the TTL store and by the session's own
// ExpiresAt, so a token can never outlive its cookie.
type Store struct {
	entries   *cache.Store
	generator id.Generator
	ttl       time.Duration
}

func New(ttl time.Duration, generator id.Generator) *Store {
	if generator == nil {
		generator = id.NewRandomGenerator()
	}

	return &Store{
		entries:   cache.NewStore(ttl),
		generator: generator,
		ttl:       ttl,
	}
}

func (s *Store) Issue(ctx context.Context, principal user.Principal) (session.Session, error) {
	token, err := s.generator.NewID()
	if err != nil {
		return session.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	item := session.Session{
		Token:     token,
		Principal: principal,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.entries.Set(ctx, token, item)

	return item, nil
}

func (s *Store) Get(ctx context.Context, token string) (session.Session, bool) {
	value, ok := s.entries.Get(ctx, token)
	if !ok {
		return session.Session{}, false
	}

	item, ok := value.(session.Session)
	if !ok {
		return session.Session{}, false
	}
	if !item.ExpiresAt.After(time.Now()) {
		s.entries.Delete(ctx, token)
		return session.Session{}, false
	}

	return item, true
}

func (s *Store) Delete(ctx context.Context, token string) {
	s.entries.Delete(ctx, token)
}
