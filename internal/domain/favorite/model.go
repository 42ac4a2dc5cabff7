package favorite

// Favorite links a user to a followed team by canonical team name.
type Favorite struct {
	UserID int64
	Team   string
}
