package model

import (
	"strconv"
	"strings"
	"time"
)

// Report is the complete analysis report produced from one dataset run.
type Report struct {
	Source      string    `json:"source"`       // Dataset path the records came from
	GeneratedAt time.Time `json:"generated_at"` // When the analysis ran
	Total       int       `json:"total"`        // Total record count

	Segments FrequencyTable `json:"segments"` // Frequency table over Segment
	Statuses FrequencyTable `json:"statuses"` // Frequency table over Status
	Seeking  FrequencyTable `json:"seeking"`  // Frequency table over the investment-seeking flag

	SegmentByStatus CrossTab `json:"segment_by_status"` // Segment × Status counts

	TeamSizes     Histogram `json:"team_sizes"`     // Bucketed team-size distribution
	SoughtAmounts Histogram `json:"sought_amounts"` // Bucketed sought-investment distribution

	Websites     PresenceRatio `json:"websites"`     // Records with a website
	Emails       PresenceRatio `json:"emails"`       // Records with a contact email
	Certificates PresenceRatio `json:"certificates"` // Records with a startup certificate

	LLM *LLMNarrative `json:"llm,omitempty"` // Optional narrative (never affects the numbers)
}

// FrequencyTable maps each category of one attribute to its count and share
// of the total. Rows are ordered by descending count, ties by category name.
type FrequencyTable struct {
	Attribute string         `json:"attribute"`
	Total     int            `json:"total"`
	Rows      []FrequencyRow `json:"rows"`
}

// FrequencyRow is one category of a frequency table.
type FrequencyRow struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // 100*count/total, one decimal
}

// CrossTab is a two-dimensional count matrix over two categorical
// attributes. Cells holds only observed pairs; Matrix zero-fills the rest.
type CrossTab struct {
	AttributeA string         `json:"attribute_a"`
	AttributeB string         `json:"attribute_b"`
	ValuesA    []string       `json:"values_a"` // Row order, by descending row total
	ValuesB    []string       `json:"values_b"` // Column order, by descending column total
	Cells      map[string]int `json:"cells"`    // CellKey(a, b) -> count
}

// CellKey builds the map key for one cross-tab cell. The separator is
// escaped inside the categories so distinct pairs never share a key.
func CellKey(a, b string) string {
	return cellEscaper.Replace(a) + "|" + cellEscaper.Replace(b)
}

var cellEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

// Matrix reconstructs the dense count matrix in ValuesA × ValuesB order,
// zero-filling cells that were never observed.
func (c CrossTab) Matrix() [][]int {
	m := make([][]int, len(c.ValuesA))
	for i, a := range c.ValuesA {
		m[i] = make([]int, len(c.ValuesB))
		for j, b := range c.ValuesB {
			m[i][j] = c.Cells[CellKey(a, b)]
		}
	}
	return m
}

// Histogram is a count distribution over ordered numeric buckets, with an
// overflow bucket above the last edge and an unspecified bucket last.
type Histogram struct {
	Attribute string            `json:"attribute"`
	Total     int               `json:"total"`
	Buckets   []HistogramBucket `json:"buckets"`
}

// HistogramBucket is one half-open range [Lower, Upper) of a histogram.
// Upper is nil for the overflow bucket. Unspecified marks the absent-value
// bucket, where Lower and Upper carry no meaning.
type HistogramBucket struct {
	Lower       float64  `json:"lower"`
	Upper       *float64 `json:"upper,omitempty"`
	Unspecified bool     `json:"unspecified,omitempty"`
	Count       int      `json:"count"`
}

// Label renders a human-readable bucket name for reports.
func (b HistogramBucket) Label() string {
	switch {
	case b.Unspecified:
		return "unspecified"
	case b.Upper == nil:
		return formatEdge(b.Lower) + "+"
	default:
		return formatEdge(b.Lower) + "–" + formatEdge(*b.Upper)
	}
}

func formatEdge(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PresenceRatio is the share of records where a boolean attribute holds.
type PresenceRatio struct {
	Attribute  string  `json:"attribute"`
	TrueCount  int     `json:"true_count"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"` // 100*true_count/total, one decimal
}

// LLMNarrative is an optional model-written summary of the report.
// It is generated after aggregation and never feeds back into the numbers.
type LLMNarrative struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
