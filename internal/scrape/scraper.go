// Package scrape crawls the startup.az directory: paginated listing pages
// first, then each startup's detail page, politely (robots.txt, rate
// limit, jitter) and through the page cache.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/scraper-bots/startup-az/internal/cache"
	"github.com/scraper-bots/startup-az/internal/model"
	"github.com/scraper-bots/startup-az/internal/worker"
)

// ErrDisallowed is returned when robots.txt forbids the listing root.
var ErrDisallowed = errors.New("robots.txt disallows scraping the directory")

// Scraper orchestrates one full directory crawl.
type Scraper struct {
	cfg     *model.Config
	fetcher *Fetcher
	limiter *worker.Limiter
	verbose bool
}

// NewScraper wires a Scraper from configuration.
func NewScraper(cfg *model.Config) *Scraper {
	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		pageCache = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Scraper{
		cfg: cfg,
		fetcher: NewFetcher(
			cfg.HTTP.Timeout,
			cfg.HTTP.UserAgent,
			cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.MaxRetries,
			pageCache,
			cfg.Cache.DiskTTL,
		),
		limiter: worker.NewLimiter(
			cfg.Scrape.RequestsPerSecond,
			cfg.Scrape.Burst,
			cfg.Scrape.JitterMin,
			cfg.Scrape.JitterMax,
		),
		verbose: cfg.Output.Verbose,
	}
}

// Run crawls listing pages until pagination is exhausted (or the configured
// page limit is hit), then fetches every detail page concurrently. Failed
// detail pages are reported and skipped; the crawl itself keeps going.
func (s *Scraper) Run(ctx context.Context) ([]RawStartup, error) {
	var robots *RobotsChecker
	if s.cfg.Scrape.RespectRobots {
		var err error
		robots, err = FetchRobots(ctx, &http.Client{Timeout: s.cfg.HTTP.Timeout}, s.cfg.Scrape.BaseURL, s.cfg.HTTP.UserAgent)
		if err != nil {
			return nil, fmt.Errorf("robots.txt: %w", err)
		}
		if !robots.Allowed(ListingURL(s.cfg.Scrape.BaseURL, 1, s.cfg.Scrape.PerPage)) {
			return nil, ErrDisallowed
		}
	}

	detailURLs, err := s.collectDetailURLs(ctx)
	if err != nil {
		return nil, err
	}
	s.logf("✓ Found %d startup pages\n", len(detailURLs))

	outcomes := worker.Map(ctx, s.cfg.Scrape.Workers, detailURLs, func(ctx context.Context, url string) (*RawStartup, error) {
		if robots != nil && !robots.Allowed(url) {
			return nil, fmt.Errorf("disallowed by robots.txt")
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		page, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return ParseDetail(page.HTML, page.URL)
	})

	var startups []RawStartup
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", o.Input, o.Err)
			continue
		}
		startups = append(startups, *o.Value)
	}
	if len(startups) == 0 && len(detailURLs) > 0 {
		return nil, fmt.Errorf("all %d detail pages failed", len(detailURLs))
	}

	return startups, nil
}

// collectDetailURLs walks the paginated listing and gathers detail links.
// A page yielding no new links ends the walk, so a stale pagination count
// can't loop forever.
func (s *Scraper) collectDetailURLs(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	for page := 1; s.cfg.Scrape.Pages == 0 || page <= s.cfg.Scrape.Pages; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		listingURL := ListingURL(s.cfg.Scrape.BaseURL, page, s.cfg.Scrape.PerPage)
		s.logf("⚙️  Fetching listing page %d...\n", page)
		result, err := s.fetcher.Fetch(ctx, listingURL)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("fetch first listing page: %w", err)
			}
			fmt.Fprintf(os.Stderr, "✗ listing page %d: %v\n", page, err)
			break
		}

		links, err := ParseListing(result.HTML, s.cfg.Scrape.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}

		added := 0
		for _, link := range links {
			if !seen[link] {
				seen[link] = true
				urls = append(urls, link)
				added++
			}
		}
		if added == 0 {
			break
		}
	}

	return urls, nil
}

func (s *Scraper) logf(format string, args ...any) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
