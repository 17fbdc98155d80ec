// Package report turns the aggregation output into files people read:
// JSON for machines, Markdown for humans, CSV for spreadsheets.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/scraper-bots/startup-az/internal/model"
)

// Renderer writes analysis reports in the supported formats.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a Renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes the human-readable report.
func (r *Renderer) RenderMarkdown(rep *model.Report, path string) error {
	md := buildMarkdown(rep, r.includeFooter)
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderCSV writes the frequency tables and presence ratios as flat CSV
// rows for spreadsheet work.
func (r *Renderer) RenderCSV(rep *model.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"attribute", "category", "count", "percentage"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range []model.FrequencyTable{rep.Segments, rep.Statuses, rep.Seeking} {
		for _, row := range t.Rows {
			record := []string{
				t.Attribute,
				row.Category,
				strconv.Itoa(row.Count),
				strconv.FormatFloat(row.Percentage, 'f', 1, 64),
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	for _, pr := range []model.PresenceRatio{rep.Websites, rep.Emails, rep.Certificates} {
		record := []string{
			pr.Attribute,
			"present",
			strconv.Itoa(pr.TrueCount),
			strconv.FormatFloat(pr.Percentage, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// RenderNarrative writes the optional LLM narrative to its own file,
// keeping it clearly separated from the computed report.
func (r *Renderer) RenderNarrative(md string, path string) error {
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints the headline numbers to stdout.
func (r *Renderer) RenderSummary(rep *model.Report) {
	fmt.Printf("\nAnalyzed %d startups from %s\n", rep.Total, rep.Source)
	if len(rep.Segments.Rows) > 0 {
		top := rep.Segments.Rows[0]
		fmt.Printf("  Top segment:  %s (%d, %.1f%%)\n", top.Category, top.Count, top.Percentage)
	}
	if len(rep.Statuses.Rows) > 0 {
		top := rep.Statuses.Rows[0]
		fmt.Printf("  Top status:   %s (%d, %.1f%%)\n", top.Category, top.Count, top.Percentage)
	}
	fmt.Printf("  With website: %d (%.1f%%)\n", rep.Websites.TrueCount, rep.Websites.Percentage)
	fmt.Printf("  With email:   %d (%.1f%%)\n", rep.Emails.TrueCount, rep.Emails.Percentage)
	fmt.Printf("  Certified:    %d (%.1f%%)\n", rep.Certificates.TrueCount, rep.Certificates.Percentage)
}
