// Package scraper fetches LHL schedule, game-detail, and standings pages.
//
// A schedule page lists one month of games as links to per-game detail
// pages. The scraper extracts those links, fetches the detail pages under a
// bounded-concurrency gate, and parses each page's flattened text into a
// game record. Individual fetch failures never abort a batch: a failed
// address simply yields an empty page.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultBaseURL      = "https://lakeshorehockeyleague.net"
	DefaultGroupID      = 1313
	DefaultStandingsURL = "https://lakeshorehockeyleague.net/Rounds/30700/2025-2026_U14_AA_Regular_Season/"
	UserAgent           = "lhl-data/1.0 (github.com/dmather/lhl-data)"
	DefaultTimeout      = 30 * time.Second
	DefaultConcurrency  = 5
)

// Config controls a Scraper. Zero values fall back to package defaults.
type Config struct {
	BaseURL     string
	GroupID     int
	Concurrency int
	Timeout     time.Duration
}

// Scraper fetches and parses league pages.
type Scraper struct {
	client      *http.Client
	baseURL     string
	groupID     int
	concurrency int
}

// New creates a Scraper from cfg, filling in defaults for zero values.
func New(cfg Config) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.GroupID == 0 {
		cfg.GroupID = DefaultGroupID
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Scraper{
		client:      &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		groupID:     cfg.GroupID,
		concurrency: cfg.Concurrency,
	}
}

// FetchPage performs one GET and returns the response body as text. Any
// transport error or non-2xx status is an error.
func (s *Scraper) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}
