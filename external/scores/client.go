package scores

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/omerdahan/seatduty/internal/platform/cache"
	"github.com/omerdahan/seatduty/internal/platform/logging"
	"github.com/omerdahan/seatduty/internal/platform/resilience"
	"github.com/omerdahan/seatduty/internal/usecase"
)

const (
	defaultBaseURL      = "https://webws.365scores.com"
	fixturesPath        = "/web/games/fixtures/"
	defaultLangID       = 2
	defaultCountryID    = 6
	defaultTimezoneName = "Asia/Jerusalem"

	maxFeedBody = 4 << 20
)

var errScoresTransient = crerr.New("scores feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	TeamID         int64
	LangID         int
	CountryID      int
	TimezoneName   string
	Timeout        time.Duration
	MaxRetries     int
	Cache          *cache.Store
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches the fixtures feed for one tracked team from the 365Scores
// web API. Responses are cached for the configured TTL and concurrent
// fetches of the same feed collapse to one upstream request.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	teamID         int64
	langID         int
	countryID      int
	timezoneName   string
	maxRetries     int
	cache          *cache.Store
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
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
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	langID := cfg.LangID
	if langID <= 0 {
		langID = defaultLangID
	}
	countryID := cfg.CountryID
	if countryID <= 0 {
		countryID = defaultCountryID
	}
	timezoneName := strings.TrimSpace(cfg.TimezoneName)
	if timezoneName == "" {
		timezoneName = defaultTimezoneName
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		teamID:         cfg.TeamID,
		langID:         langID,
		countryID:      countryID,
		timezoneName:   timezoneName,
		maxRetries:     cfg.MaxRetries,
		cache:          cfg.Cache,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type feedEnvelope struct {
	Games []feedGameItem `json:"games"`
}

type feedGameItem struct {
	ID                     int64          `json:"id"`
	StartTime              string         `json:"startTime"`
	StatusText             string         `json:"statusText"`
	ShortStatusText        string         `json:"shortStatusText"`
	CompetitionDisplayName string         `json:"competitionDisplayName"`
	HomeCompetitor         feedCompetitor `json:"homeCompetitor"`
	AwayCompetitor         feedCompetitor `json:"awayCompetitor"`
}

type feedCompetitor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FetchFixtures implements usecase.ScheduleProvider.
func (c *Client) FetchFixtures(ctx context.Context) ([]usecase.FeedGame, error) {
	if c.teamID <= 0 {
		return nil, fmt.Errorf("tracked team id must be greater than zero")
	}

	key := fmt.Sprintf("scores:fixtures:%d", c.teamID)
	if c.cache != nil {
		out, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
			return c.fetchFixturesUpstream(ctx)
		})
		if err != nil {
			return nil, err
		}
		games, ok := out.([]usecase.FeedGame)
		if !ok {
			return nil, fmt.Errorf("unexpected cached payload type %T", out)
		}
		return games, nil
	}

	out, err, _ := c.flight.Do(key, func() (any, error) {
		return c.fetchFixturesUpstream(ctx)
	})
	if err != nil {
		return nil, err
	}
	games, ok := out.([]usecase.FeedGame)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return games, nil
}

func (c *Client) fetchFixturesUpstream(ctx context.Context) ([]usecase.FeedGame, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "scores circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: scores feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("langId", strconv.Itoa(c.langID))
	values.Set("timezoneName", c.timezoneName)
	values.Set("userCountryId", strconv.Itoa(c.countryID))
	values.Set("competitors", strconv.FormatInt(c.teamID, 10))
	values.Set("showOdds", "false")

	fullURL := c.baseURL + fixturesPath + "?" + values.Encode()

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errScoresTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return nil, err
	}

	var envelope feedEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode fixtures payload: %w", err)
	}

	games := make([]usecase.FeedGame, 0, len(envelope.Games))
	for _, item := range envelope.Games {
		if item.ID <= 0 {
			continue
		}
		games = append(games, usecase.FeedGame{
			ID:                     item.ID,
			StartTime:              strings.TrimSpace(item.StartTime),
			StatusText:             strings.TrimSpace(item.StatusText),
			ShortStatusText:        strings.TrimSpace(item.ShortStatusText),
			CompetitionDisplayName: strings.TrimSpace(item.CompetitionDisplayName),
			HomeCompetitor:         usecase.FeedCompetitor{ID: item.HomeCompetitor.ID, Name: strings.TrimSpace(item.HomeCompetitor.Name)},
			AwayCompetitor:         usecase.FeedCompetitor{ID: item.AwayCompetitor.ID, Name: strings.TrimSpace(item.AwayCompetitor.Name)},
		})
	}

	c.logger.DebugContext(ctx, "fetched scores fixtures", "team_id", c.teamID, "games", len(games))
	return games, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errScoresTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errScoresTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errScoresTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "scores request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
