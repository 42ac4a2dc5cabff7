package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footballower/backend/internal/domain/user"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	const query = `SELECT id, username, email, password FROM userdata WHERE username = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by username: %w", err)
	}

	return mapUser(row), true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	const query = `SELECT id, username, email, password FROM userdata WHERE email = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by email: %w", err)
	}

	return mapUser(row), true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	const query = `INSERT INTO userdata (username, email, password) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.GetContext(ctx, &id, query, item.Username, item.Email, item.PasswordHash); err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	item.ID = id

	return item, nil
}

func mapUser(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.Password,
	}
}
