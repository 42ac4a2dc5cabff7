package memory

import (
	"context"
	"sync"

	"github.com/footballower/backend/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  []user.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.users {
		if item.Username == username {
			return item, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.users {
		if item.Email == email {
			return item, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.users = append(r.users, item)

	return item, nil
}
