package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL points at the public catalog API.
const DefaultBaseURL = "https://itunes.apple.com"

// Client queries the external music catalog. Every call is a fresh fetch:
// the client holds no cache and no state between requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	lang       string
}

// Config holds catalog client settings.
type Config struct {
	BaseURL string
	Country string // home store, e.g. "KR"
	Lang    string // home locale, e.g. "ko_kr"
	Timeout time.Duration
}

// NewClient creates a catalog client. Zero-value config fields fall back to
// the public API, the Korean home store and a 15 second timeout.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = "KR"
	}
	if cfg.Lang == "" {
		cfg.Lang = "ko_kr"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		country:    cfg.Country,
		lang:       cfg.Lang,
	}
}

// search issues a /search request. regional scopes the request to the home
// store with localized language; otherwise the worldwide store answers.
func (c *Client) search(ctx context.Context, term, entity string, limit int, regional bool) ([]result, error) {
	params := url.Values{}
	params.Set("term", term)
	params.Set("media", "music")
	params.Set("entity", entity)
	params.Set("limit", strconv.Itoa(limit))
	if regional {
		params.Set("country", c.country)
		params.Set("lang", c.lang)
	}
	return c.get(ctx, "/search", params)
}

// lookup issues a /lookup request by catalog id.
func (c *Client) lookup(ctx context.Context, id int64, entity string, limit int, regional bool) ([]result, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(id, 10))
	if entity != "" {
		params.Set("entity", entity)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if regional {
		params.Set("country", c.country)
		params.Set("lang", c.lang)
	}
	return c.get(ctx, "/lookup", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]result, error) {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog responded %s", resp.Status)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return parsed.Results, nil
}

// hybrid runs the regional and global variants of a fetch concurrently and
// merges them regional-first, deduplicated by the caller's id extractor. A
// branch failure degrades to an empty branch; only both branches failing is an
// error.
func (c *Client) hybrid(ctx context.Context, key func(result) int64, fetch func(ctx context.Context, regional bool) ([]result, error)) ([]result, error) {
	var (
		wg                     sync.WaitGroup
		regional, global       []result
		regionalErr, globalErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		regional, regionalErr = fetch(ctx, true)
	}()
	go func() {
		defer wg.Done()
		global, globalErr = fetch(ctx, false)
	}()
	wg.Wait()

	if regionalErr != nil && globalErr != nil {
		return nil, fmt.Errorf("regional: %v; global: %w", regionalErr, globalErr)
	}
	if regionalErr != nil {
		log.Debug().Err(regionalErr).Msg("regional catalog fetch failed, using global only")
	}
	if globalErr != nil {
		log.Debug().Err(globalErr).Msg("global catalog fetch failed, using regional only")
	}

	return mergeWithPriority(regional, global, key), nil
}
