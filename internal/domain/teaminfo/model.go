package teaminfo

// TeamProfile is the hand-curated reference record for one Premier League
// club. The catalog is immutable for the process lifetime; Name is the join
// key against scraped standings rows and must stay in canonical form.
type TeamProfile struct {
	Name         string
	ProfileURL   string
	Coach        string
	Competitions []string
	ID           int64
	CrestURL     string
}

// IndexByName builds a name keyed lookup over the given profiles.
// First entry wins on duplicate names.
func IndexByName(profiles []TeamProfile) map[string]TeamProfile {
	index := make(map[string]TeamProfile, len(profiles))
	for _, profile := range profiles {
		if _, ok := index[profile.Name]; ok {
			continue
		}
		index[profile.Name] = profile
	}

	return index
}
