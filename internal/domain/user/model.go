package user

// User is a registered account. PasswordHash is a bcrypt digest, never the
// clear text password.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

// Principal is the request-scoped identity resolved from a session token.
type Principal struct {
	UserID   int64
	Username string
}
