// Package dataset loads the scraped startup.az CSV into cleaned, immutable
// StartupRecord values. All cleaning happens here: the aggregator downstream
// assumes well-formed records and never partially fails.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/scraper-bots/startup-az/internal/model"
)

// MalformedRecordError reports a row that could not be turned into a
// well-formed record. Row is 1-based and counts the header.
type MalformedRecordError struct {
	Row    int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Column names as written by the scrape command. The loader also accepts
// the legacy spreadsheet headers (listing_title, Segment, ...).
const (
	colTitle         = "title"
	colSegment       = "segment"
	colStatus        = "status"
	colInvestments   = "investments"
	colTeam          = "team"
	colWebsite       = "website"
	colEmail         = "email"
	colCertification = "certification"
)

var headerAliases = map[string]string{
	"listing_title": colTitle,
	"name":          colTitle,
}

var firstNumber = regexp.MustCompile(`\d+`)

// Load reads and cleans a CSV dataset from disk.
func Load(path string) ([]model.StartupRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Parse reads and cleans a CSV dataset. Rows without a title are dropped
// (duplicate or empty listing rows); rows that are structurally broken
// surface as MalformedRecordError.
func Parse(r io.Reader) ([]model.StartupRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty dataset: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := headerAliases[name]; ok {
			name = canonical
		}
		cols[name] = i
	}
	if _, ok := cols[colTitle]; !ok {
		return nil, fmt.Errorf("dataset has no %q column", colTitle)
	}

	var records []model.StartupRecord
	row := 1
	for {
		row++
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedRecordError{Row: row, Reason: err.Error()}
		}

		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(fields) {
				return ""
			}
			return cleanCell(fields[idx])
		}

		title := cell(colTitle)
		if title == "" {
			continue // duplicate/empty listing rows carry no data
		}

		seeking, amount := normalizeInvestment(cell(colInvestments))
		records = append(records, model.StartupRecord{
			Title:             title,
			Segment:           model.ParseSegment(cell(colSegment)),
			Status:            model.ParseStatus(cell(colStatus)),
			SeekingInvestment: seeking,
			SoughtAmount:      amount,
			TeamSize:          parseTeamSize(cell(colTeam)),
			HasWebsite:        cell(colWebsite) != "",
			HasEmail:          cell(colEmail) != "",
			HasCertificate:    cell(colCertification) != "",
		})
	}

	return records, nil
}

// cleanCell trims whitespace and maps the directory's placeholder dashes to
// an empty value.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.Trim(s, "-—") == "" {
		return ""
	}
	return s
}

// normalizeInvestment maps the free-text investment cell to the seeking
// flag and, when the listing named a figure, the sought amount in AZN.
// The directory writes amounts as "25 min AZN-dək" (min = thousand).
func normalizeInvestment(raw string) (bool, *float64) {
	lower := strings.ToLower(raw)
	switch {
	case raw == "", lower == "axtarılmır", lower == "no data":
		return false, nil
	}

	if m := firstNumber.FindString(lower); m != "" && strings.Contains(lower, "min") {
		thousands, err := strconv.ParseFloat(m, 64)
		if err == nil {
			amount := thousands * 1000
			return true, &amount
		}
	}

	// Seeking, but the listing named no parseable figure.
	return true, nil
}

// parseTeamSize pulls the first integer out of the free-text team cell
// ("5 nəfər", "Team of 3", ...). Absent or non-numeric cells stay absent.
func parseTeamSize(raw string) *int {
	if raw == "" {
		return nil
	}
	m := firstNumber.FindString(raw)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
