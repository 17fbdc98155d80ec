package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/scraper-bots/startup-az/internal/model"
)

type fakeProvider struct {
	narrative string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error) {
	return &NarrateResponse{Narrative: f.narrative, Model: "fake-1"}, nil
}

func sampleReport() model.Report {
	return model.Report{
		Total: 192,
		Statuses: model.FrequencyTable{
			Attribute: "status",
			Total:     192,
			Rows: []model.FrequencyRow{
				{Category: "operating", Count: 97, Percentage: 50.5},
			},
		},
		Websites: model.PresenceRatio{Attribute: "website", TrueCount: 120, Total: 192, Percentage: 62.5},
	}
}

func TestGenerateNarrative_CleanNumbers(t *testing.T) {
	s := &Summarizer{provider: &fakeProvider{
		narrative: "Of 192 startups, 97 (50.5%) are operating and 120 (62.5%) list a website.",
	}}

	n, err := s.GenerateNarrative(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n == nil || !n.Enabled {
		t.Fatal("Expected an enabled narrative")
	}
	if len(n.Warnings) != 0 {
		t.Errorf("Expected no warnings for computed figures, got %v", n.Warnings)
	}
}

func TestGenerateNarrative_FlagsInventedNumbers(t *testing.T) {
	s := &Summarizer{provider: &fakeProvider{
		narrative: "Roughly 500 startups were analyzed.",
	}}

	n, err := s.GenerateNarrative(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(n.Warnings) == 0 {
		t.Error("Expected a warning for a figure the report never computed")
	}
}

func TestGenerateNarrative_DisabledWithoutProvider(t *testing.T) {
	s, err := NewSummarizer(model.LLMConfig{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.IsEnabled() {
		t.Error("Expected summarizer to be disabled without a provider")
	}
	n, err := s.GenerateNarrative(context.Background(), sampleReport())
	if err != nil || n != nil {
		t.Errorf("Expected (nil, nil) when disabled, got (%v, %v)", n, err)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(model.LLMConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	md := RenderSeparateMarkdown(&model.LLMNarrative{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		SummaryMD: "A short narrative.",
		Warnings:  []string{"narrative mentions 500, which is not a computed figure"},
	})
	if !strings.Contains(md, "model-generated") {
		t.Error("Expected the narrative to be labeled model-generated")
	}
	if !strings.Contains(md, "A short narrative.") {
		t.Error("Expected the narrative body to be included")
	}
	if !strings.Contains(md, "## Warnings") {
		t.Error("Expected warnings section")
	}
}
