package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ParseListing extracts startup detail-page URLs from one listing page.
// Detail links on the directory point at /startup/<slug>.html style paths;
// pagination and navigation links are skipped. The result is deduplicated
// and preserves page order.
func ParseListing(htmlContent string, baseURL string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	seen := make(map[string]bool)
	var links []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attr(n, "href"); href != "" {
				if resolved := resolveDetailURL(base, href); resolved != "" && !seen[resolved] {
					seen[resolved] = true
					links = append(links, resolved)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

// resolveDetailURL resolves href against base and keeps it only when it
// looks like a same-host startup detail page.
func resolveDetailURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host != base.Host {
		return ""
	}

	path := strings.ToLower(resolved.Path)
	// Listing pages themselves ("startup.html?page=N") are not details.
	if resolved.Query().Get("page") != "" {
		return ""
	}
	if !strings.Contains(path, "/startup/") && !strings.Contains(path, "/startups/") {
		return ""
	}
	return resolved.String()
}

// ListingURL builds the paginated listing URL for one page number.
func ListingURL(baseURL string, page, perPage int) string {
	return fmt.Sprintf("%s/startup.html?page=%d&per-page=%d", strings.TrimRight(baseURL, "/"), page, perPage)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
