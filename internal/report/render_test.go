package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scraper-bots/startup-az/internal/model"
)

func sampleReport() *model.Report {
	upper := 25000.0
	return &model.Report{
		Source:      "startup_az.csv",
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Total:       192,
		Segments: model.FrequencyTable{
			Attribute: "segment",
			Total:     192,
			Rows: []model.FrequencyRow{
				{Category: "fintech", Count: 53, Percentage: 27.6},
				{Category: "edtech", Count: 42, Percentage: 21.9},
			},
		},
		Statuses: model.FrequencyTable{
			Attribute: "status",
			Total:     192,
			Rows: []model.FrequencyRow{
				{Category: "operating", Count: 97, Percentage: 50.5},
			},
		},
		Seeking: model.FrequencyTable{
			Attribute: "seeking_investment",
			Total:     192,
			Rows: []model.FrequencyRow{
				{Category: "not seeking", Count: 164, Percentage: 85.4},
				{Category: "seeking", Count: 28, Percentage: 14.6},
			},
		},
		SegmentByStatus: model.CrossTab{
			AttributeA: "segment",
			AttributeB: "status",
			ValuesA:    []string{"fintech", "edtech"},
			ValuesB:    []string{"operating", "mvp"},
			Cells: map[string]int{
				model.CellKey("fintech", "operating"): 30,
				model.CellKey("edtech", "mvp"):        12,
			},
		},
		TeamSizes: model.Histogram{
			Attribute: "team_size",
			Total:     192,
			Buckets: []model.HistogramBucket{
				{Lower: 0, Upper: &upper, Count: 100},
				{Lower: 25000, Count: 12},
				{Unspecified: true, Count: 80},
			},
		},
		Websites: model.PresenceRatio{Attribute: "website", TrueCount: 120, Total: 192, Percentage: 62.5},
		Emails:   model.PresenceRatio{Attribute: "email", TrueCount: 110, Total: 192, Percentage: 57.3},
	}
}

func TestRenderMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	r := NewRenderer(true)

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected report file, got %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Startup Directory Analysis",
		"Startups analyzed: **192**",
		"| fintech | 53 | 27.6% |",
		"| operating | 97 | 50.5% |",
		"## Status by Segment",
		"| fintech | 30 | 0 |", // zero-filled cell
		"| website | 120 | 192 | 62.5% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}
	if !strings.Contains(md, "---\n") {
		t.Error("Expected footer when enabled")
	}
}

func TestRenderMarkdown_NoFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	r := NewRenderer(false)

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "directory snapshot") {
		t.Error("Expected no footer when disabled")
	}
}

func TestRenderJSON_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := NewRenderer(true)

	if err := r.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected report file, got %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if decoded.Total != 192 {
		t.Errorf("Expected total 192 after round trip, got %d", decoded.Total)
	}
	if decoded.Statuses.Rows[0].Category != "operating" {
		t.Errorf("Expected statuses preserved, got %+v", decoded.Statuses.Rows)
	}
}

func TestRenderCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	r := NewRenderer(true)

	if err := r.RenderCSV(sampleReport(), path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected CSV file, got %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Expected parseable CSV, got %v", err)
	}
	if rows[0][0] != "attribute" {
		t.Errorf("Expected header row, got %v", rows[0])
	}
	// 2 segment rows + 1 status + 2 seeking + 3 presence rows + header.
	if len(rows) != 9 {
		t.Errorf("Expected 9 rows, got %d", len(rows))
	}
}
