// Package llm generates an optional prose narrative for an analysis
// report. The narrative is presentation only: it is produced after
// aggregation from the computed numbers and can never change them.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/scraper-bots/startup-az/internal/model"
)

// Provider is one narrative backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Narrate writes a short prose summary of the report.
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)
}

// NarrateRequest is the input for narrative generation.
type NarrateRequest struct {
	Report model.Report

	// Model overrides the configured model for this request.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// NarrateResponse is the generated narrative.
type NarrateResponse struct {
	Narrative  string
	Model      string
	TokensUsed int
}

// NewProvider builds the configured provider, or nil when narratives are
// disabled (empty provider name).
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIProvider(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", cfg.Provider)
	}
}

// BuildPrompt renders the report's computed numbers into the narration
// prompt. The model is told to restate, never to recompute or embellish.
func BuildPrompt(r model.Report) string {
	var sb strings.Builder

	sb.WriteString(`You are writing a short narrative for a descriptive-statistics report over a startup directory snapshot.

RULES:
1. Use ONLY the numbers below. Do not compute, extrapolate, or invent any figure.
2. Do not speculate about causes or trends; describe the distribution as given.
3. Write 4-6 sentences of plain prose, no headings or lists.

`)
	sb.WriteString(fmt.Sprintf("Startups analyzed: %d\n", r.Total))

	writeTable := func(name string, t model.FrequencyTable) {
		sb.WriteString(name + ":\n")
		for _, row := range t.Rows {
			sb.WriteString(fmt.Sprintf("- %s: %d (%.1f%%)\n", row.Category, row.Count, row.Percentage))
		}
	}
	writeTable("Segments", r.Segments)
	writeTable("Statuses", r.Statuses)
	writeTable("Investment seeking", r.Seeking)

	sb.WriteString(fmt.Sprintf("With website: %d of %d (%.1f%%)\n", r.Websites.TrueCount, r.Websites.Total, r.Websites.Percentage))
	sb.WriteString(fmt.Sprintf("With email: %d of %d (%.1f%%)\n", r.Emails.TrueCount, r.Emails.Total, r.Emails.Percentage))
	sb.WriteString(fmt.Sprintf("Certified: %d of %d (%.1f%%)\n", r.Certificates.TrueCount, r.Certificates.Total, r.Certificates.Percentage))

	return sb.String()
}
