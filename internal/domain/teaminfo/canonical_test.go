package teaminfo

import "testing"

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		scraped string
		want    string
	}{
		{"plain club gets suffix", "Arsenal", "Arsenal FC"},
		{"whitespace trimmed first", "  Liverpool  ", "Liverpool FC"},
		{"tottenham alias", "Tottenham", "Tottenham Hotspur FC"},
		{"brighton alias", "Brighton", "Brighton and Hove Albion FC"},
		{"ipswich alias", "Ipswich", "Ipswich Town FC"},
		{"west ham alias", "West Ham", "West Ham United FC"},
		{"leicester alias", "Leicester", "Leicester City FC"},
		{"empty stays empty", "   ", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Canonicalize(tc.scraped); got != tc.want {
				t.Fatalf("Canonicalize(%q)=%q, want %q", tc.scraped, got, tc.want)
			}
		})
	}
}

func TestCanonicalize_SuffixesUnconditionally(t *testing.T) {
	t.Parallel()

	// A name already carrying the suffix gets it doubled; ingestion code
	// must only canonicalize raw scraped names. This pins the contract.
	if got := Canonicalize("Arsenal FC"); got != "Arsenal FC FC" {
		t.Fatalf("expected unconditional suffixing, got=%q", got)
	}
}
