package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/scraper-bots/startup-az/internal/model"
	"github.com/scraper-bots/startup-az/internal/scrape"
	"github.com/spf13/cobra"
)

var (
	scrapeOutput  string
	scrapePages   int
	scrapeWorkers int
	scrapeTimeout time.Duration
	userAgent     string
	noCache       bool
	noRobots      bool
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the startup.az directory into a CSV dataset",
	Long: `Scrape walks the startup.az listing pages, fetches every startup
detail page, and writes the collected fields to a CSV dataset suitable
for the analyze command.

Requests are rate-limited with a randomized pause between detail pages,
and fetched pages are cached so a re-run only hits new URLs.

Example:
  startupaz scrape
  startupaz scrape --output startup_az.csv --pages 5
  startupaz scrape --workers 2 --no-cache`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapeOutput, "output", "startup_az.csv", "output CSV path")
	scrapeCmd.Flags().IntVar(&scrapePages, "pages", 0, "listing pages to walk (0 = until exhausted)")
	scrapeCmd.Flags().IntVar(&scrapeWorkers, "workers", 4, "number of concurrent detail fetchers")
	scrapeCmd.Flags().DurationVar(&scrapeTimeout, "timeout", 30*time.Minute, "total timeout for the scrape")
	scrapeCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	scrapeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetches)")
	scrapeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip the robots.txt check")
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	// Layer flags over file/env config
	cfg := loadConfig()
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	if cmd.Flags().Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if cmd.Flags().Changed("pages") {
		cfg.Scrape.Pages = scrapePages
	}
	if cmd.Flags().Changed("workers") {
		cfg.Scrape.Workers = scrapeWorkers
	}
	if noRobots {
		cfg.Scrape.RespectRobots = false
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	fmt.Fprintf(os.Stderr, "Scraping %s (workers: %d, cache: %v)\n",
		cfg.Scrape.BaseURL, cfg.Scrape.Workers, cfg.Cache.Enabled)

	s := scrape.NewScraper(cfg)
	startups, err := s.Run(ctx)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if err := scrape.WriteCSV(scrapeOutput, startups); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote %d startups to %s\n", len(startups), scrapeOutput)
	return nil
}
