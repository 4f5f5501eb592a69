// Package riot is a minimal client for the Riot Games endpoints used to find a
// summoner's active game and the champion static data.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
)

const (
	defaultHostPattern = "https://%s.api.pvp.net"
	globalEndpoint     = "global"

	// Static data is global; the region only selects the locale defaults.
	staticRegion = "euw"

	defaultTimeout = 15 * time.Second
	maxBodySize    = 32 << 20
)

// Client talks to the Riot API with an explicit API key. It holds no global state.
type Client struct {
	apiKey        string
	baseURL       string
	staticBaseURL string
	httpClient    *http.Client
	logger        *slog.Logger
}

type Option func(*Client)

// WithBaseURL replaces the per-region hosts with a single base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithStaticBaseURL overrides the host used for static data.
func WithStaticBaseURL(u string) Option {
	return func(c *Client) {
		c.staticBaseURL = u
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) host(endpoint string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf(defaultHostPattern, endpoint)
}

func (c *Client) staticHost() string {
	if c.staticBaseURL != "" {
		return c.staticBaseURL
	}
	return c.host(globalEndpoint)
}

// SummonerByName looks up a summoner by an already standardized name.
func (c *Client) SummonerByName(ctx context.Context, p lol.Platform, name string) (*Summoner, error) {
	region := p.Region()
	reqURL := fmt.Sprintf("%s/api/lol/%s/v1.4/summoner/by-name/%s",
		c.host(region), region, url.PathEscape(name))

	var result map[string]Summoner
	if err := c.get(ctx, reqURL, nil, &result); err != nil {
		return nil, fmt.Errorf("summoner by name: %w", err)
	}

	s, ok := result[name]
	if !ok {
		return nil, fmt.Errorf("summoner by name %q: %w", name, ErrNotFound)
	}
	return &s, nil
}

// CurrentGame returns the active game of a summoner. A summoner who is not in a game
// yields an error matching ErrNotFound.
func (c *Client) CurrentGame(ctx context.Context, p lol.Platform, summonerID int64) (*CurrentGameInfo, error) {
	reqURL := fmt.Sprintf("%s/observer-mode/rest/consumer/getSpectatorGameInfo/%s/%d",
		c.host(p.Region()), p, summonerID)

	var info CurrentGameInfo
	if err := c.get(ctx, reqURL, nil, &info); err != nil {
		return nil, fmt.Errorf("current game: %w", err)
	}
	return &info, nil
}

// Versions lists static data versions, newest first.
func (c *Client) Versions(ctx context.Context) ([]string, error) {
	var versions []string
	if err := c.get(ctx, c.staticURL("versions"), nil, &versions); err != nil {
		return nil, fmt.Errorf("versions: %w", err)
	}
	return versions, nil
}

func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	versions, err := c.Versions(ctx)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", errors.New("versions: empty list")
	}
	return versions[0], nil
}

// Champions downloads all champions including their spells.
func (c *Client) Champions(ctx context.Context) (*ChampionList, error) {
	var list ChampionList
	query := url.Values{"champData": {"spells"}}
	if err := c.get(ctx, c.staticURL("champion"), query, &list); err != nil {
		return nil, fmt.Errorf("champions: %w", err)
	}
	return &list, nil
}

// ValidateKey checks the API key with a lightweight request.
// Returns:
//   - (true, nil) if the key is accepted
//   - (false, nil) if the key is rejected (401/403)
//   - (false, error) if validity could not be determined
func (c *Client) ValidateKey(ctx context.Context) (bool, error) {
	if c.apiKey == "" {
		return false, errors.New("API key cannot be empty")
	}

	_, err := c.Versions(ctx)
	switch {
	case err == nil:
		return true, nil
	case IsCredentialError(err):
		return false, nil
	default:
		return false, err
	}
}

func (c *Client) staticURL(variant string) string {
	return fmt.Sprintf("%s/api/lol/static-data/%s/v1.2/%s", c.staticHost(), staticRegion, variant)
}

func (c *Client) get(ctx context.Context, reqURL string, query url.Values, result any) error {
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("riot request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{Code: resp.StatusCode}
		var payload statusPayload
		if json.Unmarshal(body, &payload) == nil && payload.Status != nil {
			statusErr.Message = payload.Status.Message
		}
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			statusErr.RetryAfter = time.Duration(secs) * time.Second
		}
		return statusErr
	}

	// Some endpoints report failures as a status object with a 200 response.
	var payload statusPayload
	if json.Unmarshal(body, &payload) == nil && payload.Status != nil && payload.Status.StatusCode != 0 {
		return &StatusError{Code: payload.Status.StatusCode, Message: payload.Status.Message}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
