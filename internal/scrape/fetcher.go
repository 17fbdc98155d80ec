package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/scraper-bots/startup-az/internal/cache"
)

// fetchSleepFunc is overridable in tests to skip backoff delays.
var fetchSleepFunc = time.Sleep

// Fetcher retrieves directory pages over HTTP with a body-size cap, a
// redirect cap and retry on transient failures. When a cache is attached,
// fetched pages are served from and written to it.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	maxRetries int
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewFetcher creates a Fetcher. cache may be nil to always hit the network.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64, maxRetries int, c cache.Cache, cacheTTL time.Duration) *Fetcher {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:  userAgent,
		maxBytes:   maxBytes,
		maxRetries: maxRetries,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

// Page is one fetched directory page.
type Page struct {
	URL        string
	HTML       string
	StatusCode int
	FromCache  bool
}

// Fetch retrieves one page, consulting the cache first.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if f.cache != nil {
		if body, found := f.cache.Get(cache.Key(rawURL)); found {
			return &Page{URL: rawURL, HTML: string(body), StatusCode: http.StatusOK, FromCache: true}, nil
		}
	}

	page, err := f.fetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		_ = f.cache.Set(cache.Key(rawURL), []byte(page.HTML), f.cacheTTL)
	}
	return page, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, rawURL string) (*Page, error) {
	var lastErr error
	backoff := time.Second

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		if attempt > 1 {
			fetchSleepFunc(backoff)
			backoff *= 2
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, retryable, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", f.maxRetries, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (*Page, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "az,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}

	return &Page{
		URL:        resp.Request.URL.String(),
		HTML:       string(body),
		StatusCode: resp.StatusCode,
	}, false, nil
}
