package premierleague

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/footballower/backend/internal/domain/standings"
	"github.com/footballower/backend/internal/domain/teaminfo"
	"github.com/footballower/backend/internal/platform/logging"
)

const (
	defaultStandingsURL = "https://www.premierleague.com/tables"
	defaultTimeout      = 15 * time.Second

	// The tables page renders several leagues; the isPL class pins the
	// selector to the Premier League variant of the shared table markup.
	standingsRowSelector = "tbody.league-table__tbody.isPL tr"
	teamNameSelector     = ".team .long"
	rankSelector         = ".league-table__value"
	pointsSelector       = ".points"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

type ClientConfig struct {
	HTTPClient   *http.Client
	StandingsURL string
	Timeout      time.Duration
	Logger       *logging.Logger
}

// Client extracts the league table from the Premier League standings page.
type Client struct {
	httpClient   *http.Client
	standingsURL string
	logger       *logging.Logger
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

	standingsURL := strings.TrimSpace(cfg.StandingsURL)
	if standingsURL == "" {
		standingsURL = defaultStandingsURL
	}

	return &Client{
		httpClient:   httpClient,
		standingsURL: standingsURL,
		logger:       logger,
	}
}

// FetchStandings retrieves and parses the league table. Rows come back in
// page order, which is the competition rank order as rendered. Rows whose
// team cell is empty (header and footer artifacts) are skipped. A selector
// miss yields zero rows, not an error; the caller cannot tell a broken
// layout from an empty table and that is a known property of this source.
func (c *Client) FetchStandings(ctx context.Context) ([]standings.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.standingsURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "create standings request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch standings page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, crerr.Newf("standings page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, crerr.Wrap(err, "parse standings page")
	}

	rows := make([]standings.Row, 0, 20)
	doc.Find(standingsRowSelector).Each(func(_ int, tr *goquery.Selection) {
		name := strings.TrimSpace(tr.Find(teamNameSelector).Text())
		if name == "" {
			return
		}

		rows = append(rows, standings.Row{
			Team:   teaminfo.Canonicalize(name),
			Rank:   strings.TrimSpace(tr.Find(rankSelector).Text()),
			Points: strings.TrimSpace(tr.Find(pointsSelector).Text()),
		})
	})

	c.logger.DebugContext(ctx, "standings scraped", "rows", len(rows))

	return rows, nil
}
