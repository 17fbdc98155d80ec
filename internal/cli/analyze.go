package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/scraper-bots/startup-az/internal/dataset"
	"github.com/scraper-bots/startup-az/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON        string
	outMD          string
	outCSV         string
	analyzeTimeout time.Duration
	noFooter       bool
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset.csv>",
	Short: "Compute descriptive statistics over a scraped dataset",
	Long: `Analyze loads a startup dataset CSV and computes:
- Frequency tables for segment, status, and investment seeking
- A segment-by-status cross-tabulation
- Bucketed team-size and sought-investment histograms
- Presence ratios for websites, emails, and certificates

Example:
  startupaz analyze startup_az.csv
  startupaz analyze startup_az.csv --json report.json --md report.md
  startupaz analyze startup_az.csv --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outCSV, "csv", "", "output summary CSV path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout (only matters with --llm)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintln(os.Stderr)
	}

	// Layer flags over file/env config
	cfg := loadConfig()
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	if cmd.Flags().Changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
	}
	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		// The key only ever comes from the environment
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	records, err := dataset.Load(path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d records\n", len(records))
	}

	a := pipeline.NewAnalyzer(cfg)
	rep, err := a.Analyze(ctx, records, path)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if verbose && rep.LLM != nil && rep.LLM.Enabled {
		fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n", rep.LLM.Provider, rep.LLM.Model)
	}

	if err := a.RenderReport(rep, outJSON, outMD, outCSV, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
