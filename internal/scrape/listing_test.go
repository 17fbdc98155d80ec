package scrape

import (
	"reflect"
	"testing"
)

const listingFixture = `<!DOCTYPE html>
<html><body>
<nav>
  <a href="/startup.html?page=1&per-page=12">1</a>
  <a href="/startup.html?page=2&per-page=12">2</a>
</nav>
<div class="items">
  <div class="item"><a href="/startup/agrolize.html">Agrolize</a></div>
  <div class="item"><a href="/startup/edubox.html">Edubox</a></div>
  <div class="item"><a href="/startup/agrolize.html">Agrolize (again)</a></div>
  <div class="item"><a href="https://www.startup.az/startup/payly.html">Payly</a></div>
  <div class="item"><a href="https://other-site.example/startup/foreign.html">Foreign</a></div>
</div>
<footer>
  <a href="mailto:info@startup.az">Contact</a>
  <a href="#top">Top</a>
  <a href="/about.html">About</a>
</footer>
</body></html>`

func TestParseListing_ExtractsDetailLinks(t *testing.T) {
	links, err := ParseListing(listingFixture, "https://www.startup.az")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{
		"https://www.startup.az/startup/agrolize.html",
		"https://www.startup.az/startup/edubox.html",
		"https://www.startup.az/startup/payly.html",
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("Expected %v, got %v", want, links)
	}
}

func TestParseListing_EmptyPage(t *testing.T) {
	links, err := ParseListing("<html><body>No startups here</body></html>", "https://www.startup.az")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(links) != 0 {
		t.Errorf("Expected no links, got %v", links)
	}
}

func TestListingURL(t *testing.T) {
	got := ListingURL("https://www.startup.az/", 2, 12)
	want := "https://www.startup.az/startup.html?page=2&per-page=12"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
