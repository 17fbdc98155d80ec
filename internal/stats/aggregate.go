// Package stats implements the descriptive-statistics core: frequency
// tables, cross-tabulations, bucketed histograms and presence ratios over
// an immutable slice of startup records. All operations are pure and
// deterministic; the only failure mode is an empty input.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/scraper-bots/startup-az/internal/model"
)

// ErrEmptyInput is returned by every table-producing operation when zero
// records are supplied. Callers must handle it before rendering; there is
// no table with NaN percentages.
var ErrEmptyInput = errors.New("no records to aggregate")

// CategoricalSelector extracts one categorical attribute from a record.
// It must return a category for every record (sentinels included), so that
// category counts always sum to the total.
type CategoricalSelector func(model.StartupRecord) string

// NumericSelector extracts one optional numeric attribute from a record.
// The bool reports whether the value is present.
type NumericSelector func(model.StartupRecord) (float64, bool)

// BoolSelector extracts one boolean attribute from a record.
type BoolSelector func(model.StartupRecord) bool

// FrequencyTable tabulates one categorical attribute. Rows are ordered by
// descending count, ties broken by category name ascending.
func FrequencyTable(records []model.StartupRecord, attribute string, sel CategoricalSelector) (model.FrequencyTable, error) {
	if len(records) == 0 {
		return model.FrequencyTable{}, ErrEmptyInput
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[sel(r)]++
	}

	rows := make([]model.FrequencyRow, 0, len(counts))
	for category, count := range counts {
		rows = append(rows, model.FrequencyRow{
			Category:   category,
			Count:      count,
			Percentage: percentage(count, len(records)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})

	return model.FrequencyTable{
		Attribute: attribute,
		Total:     len(records),
		Rows:      rows,
	}, nil
}

// CrossTabulation counts record pairs over two categorical attributes.
// Row and column orders follow their marginal totals (descending, ties by
// name), so the dense Matrix view lines up with the frequency tables.
func CrossTabulation(records []model.StartupRecord, attrA string, selA CategoricalSelector, attrB string, selB CategoricalSelector) (model.CrossTab, error) {
	if len(records) == 0 {
		return model.CrossTab{}, ErrEmptyInput
	}

	cells := make(map[string]int)
	totalsA := make(map[string]int)
	totalsB := make(map[string]int)
	for _, r := range records {
		a, b := selA(r), selB(r)
		cells[model.CellKey(a, b)]++
		totalsA[a]++
		totalsB[b]++
	}

	return model.CrossTab{
		AttributeA: attrA,
		AttributeB: attrB,
		ValuesA:    orderedValues(totalsA),
		ValuesB:    orderedValues(totalsB),
		Cells:      cells,
	}, nil
}

// BucketedHistogram counts records into half-open buckets [edge_i, edge_i+1)
// defined by ascending edges, plus an overflow bucket for values at or above
// the last edge and an unspecified bucket (always last) for absent values.
// Values below the first edge count toward the lowest bucket; the record
// model only carries non-negative numerics, so with a zero first edge the
// case never arises.
func BucketedHistogram(records []model.StartupRecord, attribute string, sel NumericSelector, edges []float64) (model.Histogram, error) {
	if len(records) == 0 {
		return model.Histogram{}, ErrEmptyInput
	}
	if len(edges) < 2 {
		return model.Histogram{}, fmt.Errorf("histogram %q: at least two bucket edges required", attribute)
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return model.Histogram{}, fmt.Errorf("histogram %q: bucket edges must be strictly ascending", attribute)
		}
	}

	// One counter per [edge, next) bucket, one overflow, one unspecified.
	bounded := len(edges) - 1
	counts := make([]int, bounded)
	overflow := 0
	unspecified := 0

	for _, r := range records {
		v, ok := sel(r)
		if !ok {
			unspecified++
			continue
		}
		if v >= edges[len(edges)-1] {
			overflow++
			continue
		}
		idx := sort.SearchFloat64s(edges, v)
		// SearchFloat64s lands on the insertion point; step back unless the
		// value sits exactly on an edge.
		if idx == len(edges) || edges[idx] != v {
			idx--
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= bounded {
			idx = bounded - 1
		}
		counts[idx]++
	}

	buckets := make([]model.HistogramBucket, 0, bounded+2)
	for i := 0; i < bounded; i++ {
		upper := edges[i+1]
		buckets = append(buckets, model.HistogramBucket{
			Lower: edges[i],
			Upper: &upper,
			Count: counts[i],
		})
	}
	buckets = append(buckets, model.HistogramBucket{
		Lower: edges[len(edges)-1],
		Count: overflow,
	})
	buckets = append(buckets, model.HistogramBucket{
		Unspecified: true,
		Count:       unspecified,
	})

	return model.Histogram{
		Attribute: attribute,
		Total:     len(records),
		Buckets:   buckets,
	}, nil
}

// PresenceRatio reports how many records have a boolean attribute set.
func PresenceRatio(records []model.StartupRecord, attribute string, sel BoolSelector) (model.PresenceRatio, error) {
	if len(records) == 0 {
		return model.PresenceRatio{}, ErrEmptyInput
	}

	trueCount := 0
	for _, r := range records {
		if sel(r) {
			trueCount++
		}
	}

	return model.PresenceRatio{
		Attribute:  attribute,
		TrueCount:  trueCount,
		Total:      len(records),
		Percentage: percentage(trueCount, len(records)),
	}, nil
}

// percentage computes 100*count/total rounded to one decimal place.
// The extremes are reserved: 0 and 100 mean exactly none and exactly all,
// so rounding is clamped to 0.1 and 99.9 for any count strictly between.
func percentage(count, total int) float64 {
	p := math.Round(float64(count)/float64(total)*1000) / 10
	if count > 0 && count < total {
		if p >= 100 {
			p = 99.9
		} else if p <= 0 {
			p = 0.1
		}
	}
	return p
}

// orderedValues sorts categories by descending count, ties by name.
func orderedValues(totals map[string]int) []string {
	values := make([]string, 0, len(totals))
	for v := range totals {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if totals[values[i]] != totals[values[j]] {
			return totals[values[i]] > totals[values[j]]
		}
		return values[i] < values[j]
	})
	return values
}
