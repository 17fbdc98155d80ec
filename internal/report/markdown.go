package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/scraper-bots/startup-az/internal/model"
)

// buildMarkdown renders the full analysis report as Markdown.
func buildMarkdown(r *model.Report, includeFooter bool) string {
	var sb strings.Builder

	sb.WriteString("# Startup Directory Analysis\n\n")
	sb.WriteString(fmt.Sprintf("Source: %s\n\n", r.Source))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Startups analyzed: **%d**\n\n", r.Total))

	writeFrequencyTable(&sb, "Business Segments", r.Segments)
	writeFrequencyTable(&sb, "Operating Status", r.Statuses)
	writeFrequencyTable(&sb, "Investment Seeking", r.Seeking)

	writeCrossTab(&sb, "Status by Segment", r.SegmentByStatus)

	writeHistogram(&sb, "Team Sizes", r.TeamSizes)
	writeHistogram(&sb, "Sought Investment (AZN)", r.SoughtAmounts)

	sb.WriteString("## Data Completeness\n\n")
	sb.WriteString("| Attribute | Present | Total | Share |\n")
	sb.WriteString("|-----------|---------|-------|-------|\n")
	for _, pr := range []model.PresenceRatio{r.Websites, r.Emails, r.Certificates} {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.1f%% |\n",
			pr.Attribute, pr.TrueCount, pr.Total, pr.Percentage))
	}
	sb.WriteString("\n")

	if includeFooter {
		sb.WriteString("---\n\n")
		sb.WriteString("Descriptive statistics over a directory snapshot. ")
		sb.WriteString("Counts always sum to the total; unspecified and unknown are explicit categories, not omissions.\n")
	}

	return sb.String()
}

func writeFrequencyTable(sb *strings.Builder, title string, t model.FrequencyTable) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(t.Rows) == 0 {
		sb.WriteString("No data.\n\n")
		return
	}
	sb.WriteString("| Category | Count | Share |\n")
	sb.WriteString("|----------|-------|-------|\n")
	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("| %s | %d | %.1f%% |\n", row.Category, row.Count, row.Percentage))
	}
	sb.WriteString("\n")
}

func writeCrossTab(sb *strings.Builder, title string, ct model.CrossTab) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(ct.ValuesA) == 0 {
		sb.WriteString("No data.\n\n")
		return
	}

	sb.WriteString("| " + ct.AttributeA)
	for _, b := range ct.ValuesB {
		sb.WriteString(" | " + b)
	}
	sb.WriteString(" |\n|---")
	for range ct.ValuesB {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	matrix := ct.Matrix()
	for i, a := range ct.ValuesA {
		sb.WriteString("| " + a)
		for _, count := range matrix[i] {
			sb.WriteString(fmt.Sprintf(" | %d", count))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("\n")
}

func writeHistogram(sb *strings.Builder, title string, h model.Histogram) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(h.Buckets) == 0 {
		sb.WriteString("No data.\n\n")
		return
	}
	sb.WriteString("| Range | Count |\n")
	sb.WriteString("|-------|-------|\n")
	for _, b := range h.Buckets {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", b.Label(), b.Count))
	}
	sb.WriteString("\n")
}
