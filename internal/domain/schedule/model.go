package schedule

// MaxRecentMatches caps how many played matches a team schedule carries.
// The upstream page lists more; everything past the cap is ignored.
const MaxRecentMatches = 5

// RecentMatch is one played match from the team page. Scores stay strings,
// mirroring whatever the page renders (including empty on missing markup).
type RecentMatch struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore string
	AwayScore string
}

// Kickoff is the next fixture's date in both formatted and raw page form.
type Kickoff struct {
	Date     string
	DateText string
}

// UpcomingFixture is the team's next match. NextMatch holds home then away
// in page order and may be short when the fixture box is missing elements.
// Kickoff is nil when the page exposes no usable timestamp.
type UpcomingFixture struct {
	NextMatch []string
	Kickoff   *Kickoff
}

// TeamSchedule is the extracted view of one team page: up to
// MaxRecentMatches played matches, and the upcoming fixture only when fewer
// than MaxRecentMatches were collected, matching the upstream page contract.
type TeamSchedule struct {
	RecentMatches   []RecentMatch
	UpcomingFixture *UpcomingFixture
}
