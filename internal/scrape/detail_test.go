package scrape

import "testing"

const detailFixture = `<!DOCTYPE html>
<html><body>
<h1>Agrolize</h1>
<dl>
  <dt>Seqment:</dt><dd>AgroTech</dd>
  <dt>Status:</dt><dd>Fəaliyyətdədir</dd>
  <dt>İnvestisiya:</dt><dd>25 min AZN-dək</dd>
  <dt>Komanda:</dt><dd>5 nəfər</dd>
</dl>
<p><a href="https://agrolize.az">Veb sayt</a></p>
<p><a href="mailto:info@agrolize.az">info@agrolize.az</a></p>
<table>
  <tr><td>Sertifikat</td><td>Startup şəhadətnaməsi</td></tr>
</table>
</body></html>`

func TestParseDetail_AllFields(t *testing.T) {
	raw, err := ParseDetail(detailFixture, "https://www.startup.az/startup/agrolize.html")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if raw.Title != "Agrolize" {
		t.Errorf("Expected title Agrolize, got %q", raw.Title)
	}
	if raw.Segment != "AgroTech" {
		t.Errorf("Expected segment AgroTech, got %q", raw.Segment)
	}
	if raw.Status != "Fəaliyyətdədir" {
		t.Errorf("Expected status Fəaliyyətdədir, got %q", raw.Status)
	}
	if raw.Investments != "25 min AZN-dək" {
		t.Errorf("Expected investments cell, got %q", raw.Investments)
	}
	if raw.Team != "5 nəfər" {
		t.Errorf("Expected team cell, got %q", raw.Team)
	}
	if raw.Website != "https://agrolize.az" {
		t.Errorf("Expected website link, got %q", raw.Website)
	}
	if raw.Email != "info@agrolize.az" {
		t.Errorf("Expected email from mailto link, got %q", raw.Email)
	}
	if raw.Certification != "Startup şəhadətnaməsi" {
		t.Errorf("Expected certification cell, got %q", raw.Certification)
	}
	if raw.URL != "https://www.startup.az/startup/agrolize.html" {
		t.Errorf("Expected page URL recorded, got %q", raw.URL)
	}
}

func TestParseDetail_SparsePage(t *testing.T) {
	sparse := `<html><body><h1>Mystery Startup</h1><p>Nothing else.</p></body></html>`
	raw, err := ParseDetail(sparse, "https://www.startup.az/startup/mystery.html")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if raw.Title != "Mystery Startup" {
		t.Errorf("Expected title, got %q", raw.Title)
	}
	if raw.Segment != "" || raw.Status != "" || raw.Email != "" {
		t.Errorf("Expected missing fields to stay empty, got %+v", raw)
	}
}

func TestParseDetail_NoTitle(t *testing.T) {
	if _, err := ParseDetail("<html><body><p>nothing</p></body></html>", "https://www.startup.az/startup/x.html"); err == nil {
		t.Error("Expected error for a page without a title")
	}
}

func TestParseDetail_EnglishLabelsInTable(t *testing.T) {
	page := `<html><body>
<h2>Edubox</h2>
<table>
  <tr><th>Segment</th><td>EdTech</td></tr>
  <tr><th>Status</th><td>MVP</td></tr>
  <tr><th>Team</th><td>Team of 3</td></tr>
</table>
</body></html>`
	raw, err := ParseDetail(page, "https://www.startup.az/startup/edubox.html")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if raw.Segment != "EdTech" || raw.Status != "MVP" || raw.Team != "Team of 3" {
		t.Errorf("Expected table fields extracted, got %+v", raw)
	}
}
