package scrape

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// RawStartup holds the uncleaned cells of one detail page, in the same
// shape the dataset loader expects. Normalization (enums, amounts, team
// size) happens in the dataset package, not here.
type RawStartup struct {
	Title         string
	URL           string
	Segment       string
	Status        string
	Investments   string
	Team          string
	Website       string
	Email         string
	Certification string
}

// Field labels as they appear on detail pages. The directory is
// Azerbaijani-first with occasional English labels.
var detailLabels = map[string]string{
	"seqment":       "segment",
	"segment":       "segment",
	"status":        "status",
	"i̇nvestisiya":   "investments",
	"investisiya":   "investments",
	"investments":   "investments",
	"komanda":       "team",
	"team":          "team",
	"veb sayt":      "website",
	"website":       "website",
	"e-mail":        "email",
	"email":         "email",
	"sertifikat":    "certification",
	"certification": "certification",
}

// ParseDetail extracts the raw startup fields from one detail page.
// It scans label/value pairs (dt/dd lists and two-cell table rows) and
// falls back to mailto:/http anchors for email and website.
func ParseDetail(htmlContent string, pageURL string) (*RawStartup, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse detail: %w", err)
	}

	raw := &RawStartup{URL: pageURL}
	fields := make(map[string]string)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2":
				if raw.Title == "" {
					raw.Title = nodeText(n)
				}
			case "dt":
				if key, ok := detailLabels[labelKey(nodeText(n))]; ok {
					if dd := nextElement(n, "dd"); dd != nil {
						setField(fields, key, nodeText(dd))
					}
				}
			case "tr":
				label, value, ok := rowCells(n)
				if ok {
					if key, found := detailLabels[labelKey(label)]; found {
						setField(fields, key, value)
					}
				}
			case "a":
				href := attr(n, "href")
				switch {
				case strings.HasPrefix(href, "mailto:"):
					setField(fields, "email", strings.TrimPrefix(href, "mailto:"))
				case strings.HasPrefix(href, "http") && looksLikeWebsiteLink(n):
					setField(fields, "website", href)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	raw.Segment = fields["segment"]
	raw.Status = fields["status"]
	raw.Investments = fields["investments"]
	raw.Team = fields["team"]
	raw.Website = fields["website"]
	raw.Email = fields["email"]
	raw.Certification = fields["certification"]

	if raw.Title == "" {
		return nil, fmt.Errorf("detail page %s: no title found", pageURL)
	}
	return raw, nil
}

// setField keeps the first non-empty value seen for a field.
func setField(fields map[string]string, key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if _, exists := fields[key]; !exists {
		fields[key] = value
	}
}

// labelKey normalizes a label cell for lookup ("Seqment:" -> "seqment").
func labelKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimRight(s, ":")
}

// rowCells returns the first two cell texts of a table row.
func rowCells(tr *html.Node) (label, value string, ok bool) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, nodeText(c))
		}
	}
	if len(cells) < 2 {
		return "", "", false
	}
	return cells[0], cells[1], true
}

// nextElement finds the next sibling element with the given tag.
func nextElement(n *html.Node, tag string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == tag {
			return s
		}
	}
	return nil
}

// looksLikeWebsiteLink reports whether an anchor is labeled as the
// startup's own site rather than a navigation link.
func looksLikeWebsiteLink(n *html.Node) bool {
	text := strings.ToLower(nodeText(n))
	return strings.Contains(text, "sayt") || strings.Contains(text, "website") ||
		strings.Contains(text, "web")
}

// nodeText collects the visible text under a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
