package thesportsdb

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
)

const (
	defaultBaseURL    = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey     = "123"
	defaultRetryAfter = 60 * time.Second
	maxBodyBytes      = 6 << 20
)

// ErrUnexpectedStatus marks a non-2xx, non-429 provider response.
var ErrUnexpectedStatus = crerr.New("thesportsdb unexpected status")

// extraSports are served by the provider but missing from its sport list.
var extraSports = []string{"Basketball", "Rugby", "Volleyball"}

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	DefaultRetryAfter time.Duration
	Logger            *logging.Logger
}

// Client talks to TheSportsDB. Every request retries HTTP 429 without limit,
// waiting for the Retry-After hint or the configured default.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	apiKey            string
	defaultRetryAfter time.Duration
	logger            *logging.Logger
	now               func() time.Time
	sleep             func(ctx context.Context, d time.Duration) error
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
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	retryAfter := cfg.DefaultRetryAfter
	if retryAfter <= 0 {
		retryAfter = defaultRetryAfter
	}

	return &Client{
		httpClient:        httpClient,
		baseURL:           baseURL,
		apiKey:            apiKey,
		defaultRetryAfter: retryAfter,
		logger:            logger,
		now:               time.Now,
		sleep:             sleepContext,
	}
}

func (c *Client) EventsByDay(ctx context.Context, date, sport string) ([]scrape.ProviderEvent, error) {
	var envelope eventsEnvelope
	if err := c.getJSON(ctx, "eventsday.php", url.Values{"d": {date}, "s": {sport}}, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch events date=%s sport=%s", date, sport)
	}

	out := make([]scrape.ProviderEvent, 0, len(envelope.Events))
	for _, item := range envelope.Events {
		out = append(out, scrape.ProviderEvent{
			ID:            item.ID,
			LeagueID:      item.LeagueID,
			League:        item.League,
			LeagueBadge:   deref(item.LeagueBadge),
			Title:         deref(item.Title),
			HomeTeam:      deref(item.HomeTeam),
			HomeTeamBadge: deref(item.HomeTeamBadge),
			AwayTeam:      deref(item.AwayTeam),
			AwayTeamBadge: deref(item.AwayTeamBadge),
			Date:          deref(item.Date),
			Time:          deref(item.Time),
			Venue:         deref(item.Venue),
			Country:       deref(item.Country),
		})
	}

	return out, nil
}

// LeagueCountry returns the league's country or an empty string when the
// provider does not know it.
func (c *Client) LeagueCountry(ctx context.Context, leagueID string) (string, error) {
	var envelope leaguesEnvelope
	if err := c.getJSON(ctx, "lookupleague.php", url.Values{"id": {leagueID}}, &envelope); err != nil {
		return "", crerr.Wrapf(err, "lookup league id=%s", leagueID)
	}
	if len(envelope.Leagues) == 0 {
		return "", nil
	}

	return strings.TrimSpace(deref(envelope.Leagues[0].Country)), nil
}

func (c *Client) ListSports(ctx context.Context) ([]string, error) {
	var envelope sportsEnvelope
	if err := c.getJSON(ctx, "all_sports.php", nil, &envelope); err != nil {
		return nil, crerr.Wrap(err, "list sports")
	}

	seen := make(map[string]struct{}, len(envelope.Sports)+len(extraSports))
	out := make([]string, 0, len(envelope.Sports)+len(extraSports))
	for _, item := range envelope.Sports {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, name := range extraSports {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, target any) error {
	fullURL := c.baseURL + "/" + url.PathEscape(c.apiKey) + "/" + endpoint
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode provider payload")
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, crerr.Wrapf(err, "send request %s", c.redact(fullURL))
		}
		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			delay := c.retryAfter(resp.Header)
			c.logger.WarnContext(ctx, "thesportsdb rate limited, backing off",
				"url", c.redact(fullURL),
				"attempt", attempt,
				"retry_after", delay.String(),
			)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}
		if readErr != nil {
			return nil, crerr.Wrapf(readErr, "read response body %s", c.redact(fullURL))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, crerr.Mark(
				crerr.Newf("provider status=%d url=%s body=%s", resp.StatusCode, c.redact(fullURL), abbreviateBody(raw)),
				ErrUnexpectedStatus,
			)
		}

		return raw, nil
	}
}

// retryAfter reads delta-seconds or an HTTP date. Anything else, including
// zero or a date in the past, yields the default.
func (c *Client) retryAfter(header http.Header) time.Duration {
	value := strings.TrimSpace(header.Get("Retry-After"))
	if value == "" {
		return c.defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
		return c.defaultRetryAfter
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(c.now()); d > 0 {
			return d
		}
	}
	return c.defaultRetryAfter
}

func (c *Client) redact(fullURL string) string {
	if c.apiKey == "" {
		return fullURL
	}
	return strings.Replace(fullURL, "/"+c.apiKey+"/", "/REDACTED/", 1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
