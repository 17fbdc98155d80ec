package scrape

import (
	"encoding/csv"
	"fmt"
	"os"
)

// csvHeader matches the canonical column names the dataset loader reads.
var csvHeader = []string{
	"title", "url", "segment", "status", "investments",
	"team", "website", "email", "certification",
}

// WriteCSV writes the scraped startups as the analyze command's input.
func WriteCSV(path string, startups []RawStartup) (err error) {
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
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range startups {
		row := []string{
			s.Title, s.URL, s.Segment, s.Status, s.Investments,
			s.Team, s.Website, s.Email, s.Certification,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", s.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
