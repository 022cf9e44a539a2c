package apisports

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
	"football-client/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the client reaches API-Football.
type Config struct {
	BaseURL    string
	Host       string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches entity collections from API-Football and returns the decoded envelope unchanged.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		host:       resolveHost(cfg.Host),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchLeagues retrieves every league with its country and seasons.
func (c *Client) FetchLeagues(ctx context.Context) (domain.Collection[leagues.League], error) {
	return fetch[leagues.League](ctx, c, leagues.Entity)
}

// FetchCountries retrieves every country known to the API.
func (c *Client) FetchCountries(ctx context.Context) (domain.Collection[countries.Country], error) {
	return fetch[countries.Country](ctx, c, countries.Entity)
}

func fetch[T any](ctx context.Context, c *Client, entity string) (domain.Collection[T], error) {
	var empty domain.Collection[T]

	req, err := c.buildRequest(ctx, entity)
	if err != nil {
		return empty, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("%s: fetch %s: %w", providerName, entity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return empty, fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload domain.Collection[T]
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return empty, fmt.Errorf("%s: decode %s: %w", providerName, entity, err)
	}

	if len(payload.Errors) > 0 {
		return empty, &providers.APIError{
			Provider: providerName,
			Entity:   entity,
			Messages: []string(payload.Errors),
		}
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, entity string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+entity, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerHost, c.host)
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
