// Package upstream is the HTTP client for the remote read-only tiers API.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/extiers/tierboard/internal/metrics"
	"github.com/extiers/tierboard/internal/models"
)

// ErrNotFound is returned by Search when the API answers 404 for a term.
var ErrNotFound = errors.New("player not found")

// Client talks to one upstream deployment, e.g. https://api.extiers.xyz/api/v1.
// Requests carry no client-side timeout; in-flight calls are bounded by the
// caller's context and the transport defaults.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logger.Sugar(),
	}
}

// Leaderboard fetches the ranking snapshot, optionally filtered and
// re-ranked for a single gamemode. An empty or "overall" mode means the
// full unfiltered list.
func (c *Client) Leaderboard(ctx context.Context, gamemode string) ([]models.Player, error) {
	endpoint := c.baseURL + "/data"
	if gamemode != "" && gamemode != "overall" {
		endpoint += "?gamemode=" + url.QueryEscape(gamemode)
	}

	var players []models.Player
	if err := c.getJSON(ctx, "data", endpoint, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Search issues a server-side username query. A 404 maps to ErrNotFound;
// any other non-2xx status is a generic fetch error.
func (c *Client) Search(ctx context.Context, term string) ([]models.Player, error) {
	endpoint := c.baseURL + "/data?search=" + url.QueryEscape(strings.TrimSpace(term))

	var players []models.Player
	if err := c.getJSON(ctx, "search", endpoint, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Announcements fetches the posts feed in its upstream order.
func (c *Client) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var feed []models.Announcement
	if err := c.getJSON(ctx, "announcements", c.baseURL+"/announcements", &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// Ping is used by the readiness probe; any response from the data endpoint
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/data", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) getJSON(ctx context.Context, name, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(name, "error").Inc()
		c.logger.Warnw("upstream request failed", "endpoint", name, "error", err)
		return fmt.Errorf("upstream %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.UpstreamRequests.WithLabelValues(name, "not_found").Inc()
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequests.WithLabelValues(name, "error").Inc()
		c.logger.Warnw("upstream returned non-success status", "endpoint", name, "status", resp.StatusCode)
		return fmt.Errorf("upstream %s: unexpected status %d", name, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("decode %s response: %w", name, err)
	}

	metrics.UpstreamRequests.WithLabelValues(name, "ok").Inc()
	return nil
}
