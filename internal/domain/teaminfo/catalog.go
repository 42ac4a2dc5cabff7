package teaminfo

// Catalog returns the static reference table for the 2024/25 Premier League
// season. Crest IDs follow football-data.org numbering.
func Catalog() []TeamProfile {
	return []TeamProfile{
		{
			Name:         "Manchester City FC",
			ProfileURL:   "https://www.fctables.com/teams/manchester-city-189570/",
			Coach:        "Pep Guardiola",
			Competitions: []string{"Premier League", "UEFA Champions League"},
			ID:           65,
			CrestURL:     "https://crests.football-data.org/65.png",
		},
		{
			Name:         "Liverpool FC",
			ProfileURL:   "https://www.fctables.com/teams/liverpool-189071/",
			Coach:        "Arne Slot",
			Competitions: []string{"Premier League", "UEFA Champions League"},
			ID:           64,
			CrestURL:     "https://crests.football-data.org/64.png",
		},
		{
			Name:         "Arsenal FC",
			ProfileURL:   "https://www.fctables.com/teams/arsenal-180231/",
			Coach:        "Mikel Arteta",
			Competitions: []string{"Premier League", "UEFA Champions League"},
			ID:           57,
			CrestURL:     "https://crests.football-data.org/57.png",
		},
		{
			Name:         "Chelsea FC",
			ProfileURL:   "https://www.fctables.com/teams/chelsea-182666/",
			Coach:        "Mauricio Pochettino",
			Competitions: []string{"Premier League", "UEFA Europa Conference League"},
			ID:           61,
			CrestURL:     "https://crests.football-data.org/61.png",
		},
		{
			Name:         "Manchester United FC",
			ProfileURL:   "https://www.fctables.com/teams/manchester-united-189577/",
			Coach:        "Erik ten Hag",
			Competitions: []string{"Premier League", "UEFA Europa League"},
			ID:           66,
			CrestURL:     "https://crests.football-data.org/66.png",
		},
		{
			Name:         "Tottenham Hotspur FC",
			ProfileURL:   "https://www.fctables.com/teams/tottenham-195775/",
			Coach:        "Angelos Postecoglou",
			Competitions: []string{"Premier League", "UEFA Europa League"},
			ID:           73,
			CrestURL:     "https://crests.football-data.org/73.png",
		},
		{
			Name:         "West Ham United FC",
			ProfileURL:   "https://www.fctables.com/teams/west-ham-197305/",
			Coach:        "David Moyes",
			Competitions: []string{"Premier League"},
			ID:           563,
			CrestURL:     "https://crests.football-data.org/563.png",
		},
		{
			Name:         "Everton FC",
			ProfileURL:   "https://www.fctables.com/teams/everton-184479/",
			Coach:        "Sean Dyche",
			Competitions: []string{"Premier League"},
			ID:           62,
			CrestURL:     "https://crests.football-data.org/62.png",
		},
		{
			Name:         "Leicester City FC",
			ProfileURL:   "https://www.fctables.com/teams/leicester-188852/",
			Coach:        "Steve Cooper",
			Competitions: []string{"Premier League"},
			ID:           338,
			CrestURL:     "https://crests.football-data.org/338.png",
		},
		{
			Name:         "Aston Villa FC",
			ProfileURL:   "https://www.fctables.com/teams/aston-villa-180502/",
			Coach:        "Unai Emery",
			Competitions: []string{"Premier League", "UEFA Champions League"},
			ID:           58,
			CrestURL:     "https://crests.football-data.org/58.png",
		},
		{
			Name:         "Brighton and Hove Albion FC",
			ProfileURL:   "https://www.fctables.com/teams/brighton-181730/",
			Coach:        "Roberto De Zerbi",
			Competitions: []string{"Premier League"},
			ID:           397,
			CrestURL:     "https://crests.football-data.org/397.png",
		},
		{
			Name:         "Newcastle United FC",
			ProfileURL:   "https://www.fctables.com/teams/newcastle-united-190686/",
			Coach:        "Eddie Howe",
			Competitions: []string{"Premier League"},
			ID:           67,
			CrestURL:     "https://crests.football-data.org/67.png",
		},
		{
			Name:         "Wolverhampton Wanderers FC",
			ProfileURL:   "https://www.fctables.com/teams/wolverhampton-197476/",
			Coach:        "Gary O'Neil",
			Competitions: []string{"Premier League"},
			ID:           76,
			CrestURL:     "https://crests.football-data.org/76.png",
		},
		{
			Name:         "Nottingham Forest FC",
			ProfileURL:   "https://www.fctables.com/teams/nottingham-forest-190924/",
			Coach:        "Steve Cooper",
			Competitions: []string{"Premier League"},
			ID:           351,
			CrestURL:     "https://crests.football-data.org/351.png",
		},
		{
			Name:         "Ipswich Town FC",
			ProfileURL:   "https://www.fctables.com/teams/ipswich-187495/",
			Coach:        "Kieran McKenna",
			Competitions: []string{"Premier League"},
			ID:           349,
			CrestURL:     "https://crests.football-data.org/349.png",
		},
		{
			Name:         "Southampton FC",
			ProfileURL:   "https://www.fctables.com/teams/southampton-194444/",
			Coach:        "Russell Martin",
			Competitions: []string{"Premier League"},
			ID:           340,
			CrestURL:     "https://crests.football-data.org/340.png",
		},
		{
			Name:         "Brentford FC",
			ProfileURL:   "https://www.fctables.com/teams/brentford-181700/",
			Coach:        "Thomas Frank",
			Competitions: []string{"Premier League"},
			ID:           402,
			CrestURL:     "https://crests.football-data.org/402.png",
		},
		{
			Name:         "Bournemouth FC",
			ProfileURL:   "https://www.fctables.com/teams/bournemouth-179321/",
			Coach:        "Andoni Iraola",
			Competitions: []string{"Premier League"},
			ID:           1044,
			CrestURL:     "https://crests.football-data.org/bournemouth.png",
		},
		{
			Name:         "Fulham FC",
			ProfileURL:   "https://www.fctables.com/teams/fulham-185904/",
			Coach:        "Marco Silva",
			Competitions: []string{"Premier League"},
			ID:           63,
			CrestURL:     "https://crests.football-data.org/63.png",
		},
		{
			Name:         "Crystal Palace FC",
			ProfileURL:   "https://www.fctables.com/teams/crystal-palace-183166/",
			Coach:        "Roy Hodgson",
			Competitions: []string{"Premier League"},
			ID:           354,
			CrestURL:     "https://crests.football-data.org/354.png",
		},
	}
}
