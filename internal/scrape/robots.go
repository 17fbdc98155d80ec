package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker fetches and holds the directory host's robots.txt.
// The scraper targets a single host, so one fetch covers the whole run.
type RobotsChecker struct {
	data      *robotstxt.RobotsData
	userAgent string
}

// FetchRobots retrieves robots.txt for the given base URL. A missing or
// unreachable robots.txt allows everything, matching crawler convention.
func FetchRobots(ctx context.Context, client *http.Client, baseURL, userAgent string) (*RobotsChecker, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		data, _ := robotstxt.FromStatusAndBytes(404, nil)
		return &RobotsChecker{data: data, userAgent: userAgent}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}
	return &RobotsChecker{data: data, userAgent: userAgent}, nil
}

// Allowed reports whether the given URL may be fetched.
func (r *RobotsChecker) Allowed(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return r.data.TestAgent(parsed.Path, r.userAgent)
}

// CrawlDelay returns the crawl delay requested for our agent, if any.
func (r *RobotsChecker) CrawlDelay() time.Duration {
	if group := r.data.FindGroup(r.userAgent); group != nil {
		return group.CrawlDelay
	}
	return 0
}
