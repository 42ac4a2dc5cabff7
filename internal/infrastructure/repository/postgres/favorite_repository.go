package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footballower/backend/internal/domain/favorite"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]favorite.Favorite, error) {
	const query = `SELECT user_id, team FROM favouritetable WHERE user_id = $1 ORDER BY team`

	var rows []favoriteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("select favorites by user: %w", err)
	}

	out := make([]favorite.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, favorite.Favorite{
			UserID: row.UserID,
			Team:   row.Team,
		})
	}

	return out, nil
}

func (r *FavoriteRepository) Add(ctx context.Context, item favorite.Favorite) error {
	const query = `INSERT INTO favouritetable (user_id, team) VALUES ($1, $2) ON CONFLICT (user_id, team) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, item.UserID, item.Team); err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID int64, team string) (bool, error) {
	const query = `DELETE FROM favouritetable WHERE user_id = $1 AND team = $2`

	result, err := r.db.ExecContext(ctx, query, userID, team)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}

	return affected > 0, nil
}
