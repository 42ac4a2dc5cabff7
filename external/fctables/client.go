package fctables

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/footballower/backend/internal/domain/schedule"
	"github.com/footballower/backend/internal/domain/teaminfo"
	"github.com/footballower/backend/internal/platform/logging"
)

const (
	defaultTimeout = 15 * time.Second

	lastMatchesSelector = "div.box_last_matches"
	matchEntrySelector  = "div.game"
	homeTeamSelector    = "span.home"
	awayTeamSelector    = "span.away"
	scoreSelector       = "span.score.text-center"

	// The score box renders three spans: home score, a separator glyph,
	// away score. Only the outer two are scores.
	homeScoreIndex = 0
	awayScoreIndex = 2

	headToHeadSelector  = "div.small_box_h2h"
	statusEntrySelector = "div.status"
	kickoffDateSelector = "div.date"
	unixTimeAttr        = "data-unixtime"

	// The head-to-head box lists a fixed grid of status entries; the 8th
	// one carries the next-fixture date on every fctables team page.
	kickoffStatusIndex = 7

	fixtureBoxSelector  = "div.game_box"
	fixtureTeamSelector = "div.col-xs-5"
	maxFixtureTeams     = 2

	// en-GB short form, 24-hour clock, rendered in UTC.
	kickoffDateLayout = "02 Jan 2006, 15:04"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

type ClientConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client extracts recent results and the upcoming fixture from an
// fctables.com team page.
type Client struct {
	httpClient *http.Client
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchTeamSchedule retrieves and parses one team page. Unlike the
// standings path, fetch and parse failures surface to the caller. Missing
// markup inside an otherwise healthy page degrades the result instead:
// absent scores come back empty, a short head-to-head grid drops the
// kickoff date, and a short fixture box yields partial opponents.
func (c *Client) FetchTeamSchedule(ctx context.Context, pageURL string) (schedule.TeamSchedule, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return schedule.TeamSchedule{}, crerr.New("team page url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return schedule.TeamSchedule{}, crerr.Wrap(err, "create team page request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schedule.TeamSchedule{}, crerr.Wrap(err, "fetch team page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return schedule.TeamSchedule{}, crerr.Newf("team page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return schedule.TeamSchedule{}, crerr.Wrap(err, "parse team page")
	}

	out := schedule.TeamSchedule{
		RecentMatches: extractRecentMatches(doc),
	}

	// The upstream page only shows the next fixture when the recent-match
	// list has room; keep that contract.
	if len(out.RecentMatches) < schedule.MaxRecentMatches {
		out.UpcomingFixture = &schedule.UpcomingFixture{
			NextMatch: extractOpponents(doc),
			Kickoff:   extractKickoff(doc),
		}
	}

	c.logger.DebugContext(ctx, "team schedule scraped",
		"url", pageURL,
		"recent_matches", len(out.RecentMatches),
		"has_upcoming", out.UpcomingFixture != nil,
	)

	return out, nil
}

func extractRecentMatches(doc *goquery.Document) []schedule.RecentMatch {
	matches := make([]schedule.RecentMatch, 0, schedule.MaxRecentMatches)
	doc.Find(lastMatchesSelector).Find(matchEntrySelector).EachWithBreak(func(_ int, game *goquery.Selection) bool {
		if len(matches) >= schedule.MaxRecentMatches {
			return false
		}

		scoreSpans := game.Find(scoreSelector).Find("span")
		matches = append(matches, schedule.RecentMatch{
			HomeTeam:  strings.TrimSpace(game.Find(homeTeamSelector).Text()),
			AwayTeam:  strings.TrimSpace(game.Find(awayTeamSelector).Text()),
			HomeScore: strings.TrimSpace(scoreSpans.Eq(homeScoreIndex).Text()),
			AwayScore: strings.TrimSpace(scoreSpans.Eq(awayScoreIndex).Text()),
		})

		return true
	})

	return matches
}

func extractKickoff(doc *goquery.Document) *schedule.Kickoff {
	statuses := doc.Find(headToHeadSelector).Find(statusEntrySelector)
	if statuses.Length() <= kickoffStatusIndex {
		return nil
	}

	dateDiv := statuses.Eq(kickoffStatusIndex).Find(kickoffDateSelector)
	raw, ok := dateDiv.Attr(unixTimeAttr)
	if !ok {
		return nil
	}

	unix, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}

	return &schedule.Kickoff{
		Date:     time.Unix(unix, 0).UTC().Format(kickoffDateLayout),
		DateText: strings.TrimSpace(dateDiv.Text()),
	}
}

func extractOpponents(doc *goquery.Document) []string {
	opponents := make([]string, 0, maxFixtureTeams)
	doc.Find(fixtureBoxSelector).Find(fixtureTeamSelector).EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if len(opponents) >= maxFixtureTeams {
			return false
		}

		name := teaminfo.Canonicalize(cell.Find("a").Last().Text())
		if name == "" {
			return true
		}
		opponents = append(opponents, name)

		return true
	})

	return opponents
}
