package teaminfo

import "strings"

// ClubSuffix is appended to every scraped club name. Both upstream pages
// render short display names ("Arsenal") while the catalog keys on the
// official FA naming ("Arsenal FC").
const ClubSuffix = " FC"

// aliases repairs known naming divergences between the scraped sources and
// the catalog. fctables abbreviates some clubs harder than the league site
// does, so the suffixed short form maps back to the official name.
var aliases = map[string]string{
	"Tottenham FC": "Tottenham Hotspur FC",
	"Brighton FC":  "Brighton and Hove Albion FC",
	"Ipswich FC":   "Ipswich Town FC",
	"West Ham FC":  "West Ham United FC",
	"Leicester FC": "Leicester City FC",
}

// Canonicalize maps a scraped club display name to catalog form: trim,
// suffix, then alias repair. Every ingestion path goes through here so the
// two upstream naming schemes cannot drift apart again.
func Canonicalize(scraped string) string {
	name := strings.TrimSpace(scraped)
	if name == "" {
		return ""
	}

	name += ClubSuffix
	if canonical, ok := aliases[name]; ok {
		return canonical
	}

	return name
}
