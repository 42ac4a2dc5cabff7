package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/footballower/backend/internal/domain/session"
	"github.com/footballower/backend/internal/domain/user"
	"github.com/footballower/backend/internal/platform/logging"
)

// RegisterInput carries a new account request. Length and format rules are
// enforced at the HTTP boundary; the service re-checks presence only.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService owns accounts and sessions. Identity is always resolved per
// request from the session store; there is deliberately no notion of a
// process-wide current user.
type AuthService struct {
	userRepo user.Repository
	sessions session.Store
	logger   *logging.Logger
}

func NewAuthService(userRepo user.Repository, sessions session.Store, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates the account and immediately issues a session, matching
// the login flow. Duplicate username or email is rejected before hashing.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return session.Session{}, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return session.Session{}, fmt.Errorf("check username: %w", err)
	} else if exists {
		return session.Session{}, fmt.Errorf("%w: username is taken", ErrConflict)
	}

	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return session.Session{}, fmt.Errorf("check email: %w", err)
	} else if exists {
		return session.Session{}, fmt.Errorf("%w: email is taken", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return session.Session{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return session.Session{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", created.ID)

	return s.issueSession(ctx, created)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return session.Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return session.Session{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists {
		return session.Session{}, fmt.Errorf("%w: unknown username", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)); err != nil {
		return session.Session{}, fmt.Errorf("%w: incorrect password", ErrUnauthorized)
	}

	return s.issueSession(ctx, item)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: session token is required", ErrInvalidInput)
	}

	s.sessions.Delete(ctx, token)

	return nil
}

// ResolveSession maps a session token to its principal. Used by the HTTP
// middleware on every authenticated request.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: session token is required", ErrUnauthorized)
	}

	item, ok := s.sessions.Get(ctx, token)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown or expired session", ErrUnauthorized)
	}

	return item.Principal, nil
}

func (s *AuthService) issueSession(ctx context.Context, item user.User) (session.Session, error) {
	sess, err := s.sessions.Issue(ctx, user.Principal{
		UserID:   item.ID,
		Username: item.Username,
	})
	if err != nil {
		return session.Session{}, fmt.Errorf("issue session: %w", err)
	}

	return sess, nil
}
