// Package pipeline orchestrates one analysis run: cleaned records in,
// rendered report files out.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/scraper-bots/startup-az/internal/llm"
	"github.com/scraper-bots/startup-az/internal/model"
	"github.com/scraper-bots/startup-az/internal/report"
	"github.com/scraper-bots/startup-az/internal/stats"
)

// Attribute selectors for the standard report. Each categorical selector
// is total: it yields a category (sentinels included) for every record.
func segmentOf(r model.StartupRecord) string { return string(r.Segment) }
func statusOf(r model.StartupRecord) string  { return string(r.Status) }

func seekingOf(r model.StartupRecord) string {
	if r.SeekingInvestment {
		return "seeking"
	}
	return "not seeking"
}

func teamSizeOf(r model.StartupRecord) (float64, bool) {
	if r.TeamSize == nil {
		return 0, false
	}
	return float64(*r.TeamSize), true
}

func soughtAmountOf(r model.StartupRecord) (float64, bool) {
	if r.SoughtAmount == nil {
		return 0, false
	}
	return *r.SoughtAmount, true
}

// Bucket edges for the standard histograms. Amounts follow the figures the
// directory actually uses (up to 25k / up to 50k AZN).
var (
	teamSizeEdges     = []float64{0, 2, 5, 10, 20}
	soughtAmountEdges = []float64{0, 25_000, 50_000, 100_000}
)

// Analyzer runs the aggregation pass and renders its outputs.
type Analyzer struct {
	cfg        *model.Config
	renderer   *report.Renderer
	summarizer *llm.Summarizer
}

// NewAnalyzer wires an Analyzer from configuration.
func NewAnalyzer(cfg *model.Config) *Analyzer {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Analyzer{
		cfg:        cfg,
		renderer:   report.NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
	}
}

// Analyze computes the full report over a cleaned record collection.
// Records are read-only throughout; an empty collection surfaces
// stats.ErrEmptyInput rather than a report full of NaN.
func (a *Analyzer) Analyze(ctx context.Context, records []model.StartupRecord, source string) (*model.Report, error) {
	segments, err := stats.FrequencyTable(records, "segment", segmentOf)
	if err != nil {
		return nil, err
	}
	statuses, err := stats.FrequencyTable(records, "status", statusOf)
	if err != nil {
		return nil, err
	}
	seeking, err := stats.FrequencyTable(records, "seeking_investment", seekingOf)
	if err != nil {
		return nil, err
	}

	segmentByStatus, err := stats.CrossTabulation(records, "segment", segmentOf, "status", statusOf)
	if err != nil {
		return nil, err
	}

	teamSizes, err := stats.BucketedHistogram(records, "team_size", teamSizeOf, teamSizeEdges)
	if err != nil {
		return nil, err
	}
	soughtAmounts, err := stats.BucketedHistogram(records, "sought_amount", soughtAmountOf, soughtAmountEdges)
	if err != nil {
		return nil, err
	}

	websites, err := stats.PresenceRatio(records, "website", func(r model.StartupRecord) bool { return r.HasWebsite })
	if err != nil {
		return nil, err
	}
	emails, err := stats.PresenceRatio(records, "email", func(r model.StartupRecord) bool { return r.HasEmail })
	if err != nil {
		return nil, err
	}
	certificates, err := stats.PresenceRatio(records, "certificate", func(r model.StartupRecord) bool { return r.HasCertificate })
	if err != nil {
		return nil, err
	}

	rep := &model.Report{
		Source:          source,
		GeneratedAt:     time.Now().UTC(),
		Total:           len(records),
		Segments:        segments,
		Statuses:        statuses,
		Seeking:         seeking,
		SegmentByStatus: segmentByStatus,
		TeamSizes:       teamSizes,
		SoughtAmounts:   soughtAmounts,
		Websites:        websites,
		Emails:          emails,
		Certificates:    certificates,
	}

	// Narrative comes last and never touches the numbers above.
	if a.summarizer.IsEnabled() {
		narrative, err := a.summarizer.GenerateNarrative(ctx, *rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: narrative generation failed: %v\n", err)
		} else {
			rep.LLM = narrative
		}
	}

	return rep, nil
}

// RenderReport writes the requested output files and prints the summary.
func (a *Analyzer) RenderReport(rep *model.Report, jsonPath, mdPath, csvPath string, verbose bool) error {
	if jsonPath != "" {
		if err := a.renderer.RenderJSON(rep, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := a.renderer.RenderMarkdown(rep, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}
	if csvPath != "" {
		if err := a.renderer.RenderCSV(rep, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote CSV: %s\n", csvPath)
		}
	}

	if rep.LLM != nil && rep.LLM.Enabled && mdPath != "" {
		narrativePath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := a.renderer.RenderNarrative(llm.RenderSeparateMarkdown(rep.LLM), narrativePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write narrative: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote narrative: %s\n", narrativePath)
		}
	}

	a.renderer.RenderSummary(rep)
	return nil
}
