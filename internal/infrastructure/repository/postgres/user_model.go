package postgres

// Column names follow the original footballower schema; password holds the
// bcrypt digest.
type userTableModel struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`
}
