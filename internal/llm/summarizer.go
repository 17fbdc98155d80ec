package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/scraper-bots/startup-az/internal/model"
)

// Summarizer drives the configured provider and sanity-checks its output
// before it is attached to a report.
type Summarizer struct {
	provider Provider
	cfg      model.LLMConfig
}

// NewSummarizer builds a Summarizer, or one that reports disabled when no
// provider is configured.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, cfg: cfg}, nil
}

// IsEnabled reports whether narrative generation is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// GenerateNarrative produces the narrative for a finished report. Numbers
// in the narrative that don't appear in the report are recorded as
// warnings rather than silently published.
func (s *Summarizer) GenerateNarrative(ctx context.Context, r model.Report) (*model.LLMNarrative, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	resp, err := s.provider.Narrate(ctx, NarrateRequest{
		Report:    r,
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	narrative := &model.LLMNarrative{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Narrative,
	}

	known := knownNumbers(r)
	for _, num := range numberPattern.FindAllString(resp.Narrative, -1) {
		if !known[num] {
			narrative.Warnings = append(narrative.Warnings,
				fmt.Sprintf("narrative mentions %s, which is not a computed figure", num))
		}
	}

	return narrative, nil
}

// RenderSeparateMarkdown renders the narrative for its own output file,
// clearly labeled so it is never mistaken for the computed report.
func RenderSeparateMarkdown(n *model.LLMNarrative) string {
	var sb strings.Builder
	sb.WriteString("# Narrative Summary (model-generated)\n\n")
	sb.WriteString(fmt.Sprintf("Provider: %s | Model: %s\n\n", n.Provider, n.Model))
	sb.WriteString(n.SummaryMD)
	sb.WriteString("\n")
	if len(n.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range n.Warnings {
			sb.WriteString("- " + w + "\n")
		}
	}
	sb.WriteString("\nThis narrative restates the computed report; the numbers above were not produced by the model.\n")
	return sb.String()
}

// knownNumbers collects every figure the report actually contains, in the
// formats the narrative may echo them.
func knownNumbers(r model.Report) map[string]bool {
	known := make(map[string]bool)
	addInt := func(n int) {
		known[fmt.Sprintf("%d", n)] = true
	}
	addPct := func(p float64) {
		known[fmt.Sprintf("%.1f", p)] = true
		known[fmt.Sprintf("%g", p)] = true
	}

	addInt(r.Total)
	for _, t := range []model.FrequencyTable{r.Segments, r.Statuses, r.Seeking} {
		for _, row := range t.Rows {
			addInt(row.Count)
			addPct(row.Percentage)
		}
	}
	for _, h := range []model.Histogram{r.TeamSizes, r.SoughtAmounts} {
		for _, b := range h.Buckets {
			addInt(b.Count)
		}
	}
	for _, pr := range []model.PresenceRatio{r.Websites, r.Emails, r.Certificates} {
		addInt(pr.TrueCount)
		addInt(pr.Total)
		addPct(pr.Percentage)
	}
	return known
}
