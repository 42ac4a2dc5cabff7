package standings

import "github.com/footballower/backend/internal/domain/teaminfo"

// Row is one league table entry as extracted from the standings page.
// Rank and Points stay strings: the page is the source of truth and a parse
// miss renders as an empty string rather than a fabricated zero.
type Row struct {
	Team   string
	Rank   string
	Points string
}

// EnrichedRow is a Row joined against the static reference catalog.
// Profile is nil when no catalog entry matches the team name; the row is
// still served, merge never drops rows.
type EnrichedRow struct {
	Row
	Profile *teaminfo.TeamProfile
}
