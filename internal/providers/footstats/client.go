package footstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
	"github.com/foot-analises/foot-stats-service/internal/providers"
)

// Config controls how the Footstats client reaches the upstream API.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Timezone   string
	HTTPClient *http.Client
}

// Client fetches Footstats payloads and maps them onto the internal schema.
// It makes exactly one request per call.
type Client struct {
	baseURL    string
	token      string
	httpClient httpDoer
	loc        *time.Location
	now        func() time.Time
}

// NewClient constructs a Footstats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      strings.TrimSpace(cfg.Token),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		loc:        providers.ResolveLocation(cfg.Timezone, providers.ResolveLocation(providers.DefaultKickOffZone, nil)),
		now:        time.Now,
	}
}

// FetchCompetitions lists competitions grouped by category.
func (c *Client) FetchCompetitions(ctx context.Context) ([]competitions.Category, error) {
	payload, err := getJSON[competitionsResponse](ctx, c, pathCompetitions)
	if err != nil {
		return nil, err
	}
	return mapCategories(payload.Categorias), nil
}

// FetchRounds lists the rounds of a competition with their matches.
func (c *Client) FetchRounds(ctx context.Context, competitionID int) ([]competitions.Round, error) {
	payload, err := getJSON[roundsResponse](ctx, c, fmt.Sprintf(pathRounds, competitionID))
	if err != nil {
		return nil, err
	}
	return mapRounds(payload.Rodadas, c.loc), nil
}

// FetchRanking returns the favorable (pros) and unfavorable (contra) fundamentals.
func (c *Client) FetchRanking(ctx context.Context, competitionID int) (fundamentals.Ranking, error) {
	payload, err := getJSON[rankingResponse](ctx, c, fmt.Sprintf(pathRanking, competitionID))
	if err != nil {
		return fundamentals.Ranking{}, err
	}
	return mapRanking(payload), nil
}

// FetchRoster returns the flat lineup of a match.
func (c *Client) FetchRoster(ctx context.Context, matchID int) (domainlineups.MatchRoster, error) {
	payload, err := getJSON[lineupResponse](ctx, c, fmt.Sprintf(pathLineup, matchID))
	if err != nil {
		return domainlineups.MatchRoster{}, err
	}
	return mapRoster(payload, matchID), nil
}

// FetchPlayerFundamentals returns the per-player ranking for one fundamental.
func (c *Client) FetchPlayerFundamentals(ctx context.Context, competitionID, fundamentalID int) ([]fundamentals.PlayerFundamental, error) {
	payload, err := getJSON[playerFundamentalsResponse](ctx, c, fmt.Sprintf(pathPlayerFundamentals, competitionID, fundamentalID))
	if err != nil {
		return nil, err
	}
	return mapPlayerFundamentals(payload.Fundamentos), nil
}

// FetchMatchFundamentals returns per-player fundamentals of a match, by half.
func (c *Client) FetchMatchFundamentals(ctx context.Context, matchID int) ([]fundamentals.MatchFundamental, error) {
	payload, err := getJSON[matchFundamentalsResponse](ctx, c, fmt.Sprintf(pathMatchFundamentals, matchID))
	if err != nil {
		return nil, err
	}
	return mapMatchFundamentals(payload.Fundamentos), nil
}

func (c *Client) buildRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Basic "+c.token)
	}
	return req, nil
}

// getJSON performs a GET and unwraps the data envelope into T.
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	req, err := c.buildRequest(ctx, path)
	if err != nil {
		return zero, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s: %s: %w", providerName, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return zero, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "footstats rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return zero, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return zero, fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return payload.Data, nil
}
