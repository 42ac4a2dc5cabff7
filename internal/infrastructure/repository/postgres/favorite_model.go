package postgres

type favoriteTableModel struct {
	UserID int64  `db:"user_id"`
	Team   string `db:"team"`
}
