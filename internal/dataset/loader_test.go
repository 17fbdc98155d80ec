package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/scraper-bots/startup-az/internal/model"
)

func TestParse_CleansAndTags(t *testing.T) {
	csv := `title,segment,status,investments,team,website,email,certification
Agrolize,AgroTech,Operating,Axtarılmır,5 nəfər,https://agrolize.az,info@agrolize.az,Startup şəhadətnaməsi
Edubox,EdTech,MVP,25 min AZN-dək,Team of 3,,,
Mystery,,Satılır,50 min AZN-dək,----,----,,
`
	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Segment != model.SegmentAgroTech {
		t.Errorf("Expected agrotech segment, got %s", first.Segment)
	}
	if first.Status != model.StatusOperating {
		t.Errorf("Expected operating status, got %s", first.Status)
	}
	if first.SeekingInvestment {
		t.Error("Expected Axtarılmır to mean not seeking")
	}
	if first.TeamSize == nil || *first.TeamSize != 5 {
		t.Errorf("Expected team size 5, got %v", first.TeamSize)
	}
	if !first.HasWebsite || !first.HasEmail || !first.HasCertificate {
		t.Error("Expected website/email/certificate presence flags set")
	}

	second := records[1]
	if !second.SeekingInvestment {
		t.Error("Expected 25 min AZN-dək to mean seeking")
	}
	if second.SoughtAmount == nil || *second.SoughtAmount != 25000 {
		t.Errorf("Expected sought amount 25000, got %v", second.SoughtAmount)
	}
	if second.HasWebsite || second.HasEmail || second.HasCertificate {
		t.Error("Expected empty presence cells to stay false")
	}

	third := records[2]
	if third.Segment != model.SegmentUnspecified {
		t.Errorf("Expected unspecified segment for empty cell, got %s", third.Segment)
	}
	if third.Status != model.StatusSelling {
		t.Errorf("Expected selling status for Satılır, got %s", third.Status)
	}
	if third.SoughtAmount == nil || *third.SoughtAmount != 50000 {
		t.Errorf("Expected sought amount 50000, got %v", third.SoughtAmount)
	}
	if third.TeamSize != nil {
		t.Errorf("Expected dashed team cell to stay absent, got %v", third.TeamSize)
	}
	if third.HasWebsite {
		t.Error("Expected dashed website cell to stay false")
	}
}

func TestParse_DropsUntitledRows(t *testing.T) {
	csv := `listing_title,Segment,Status,Investments,Team,Website,Email,Certification
Startup One,FinTech,Operating,,,,,"cert"
,,,,,,,
Startup Two,Unrecognized Segment,Whatever,,,,,
`
	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records after dropping the empty row, got %d", len(records))
	}
	// Legacy spreadsheet headers are accepted.
	if records[0].Segment != model.SegmentFinTech {
		t.Errorf("Expected fintech segment, got %s", records[0].Segment)
	}
	// Unrecognized values are tagged, never dropped.
	if records[1].Segment != model.SegmentOther {
		t.Errorf("Expected other segment for unrecognized value, got %s", records[1].Segment)
	}
	if records[1].Status != model.StatusUnknown {
		t.Errorf("Expected unknown status for unrecognized value, got %s", records[1].Status)
	}
}

func TestParse_MalformedRow(t *testing.T) {
	csv := `title,segment,status
Startup One,FinTech,Operating
"Broken,row
`
	_, err := Parse(strings.NewReader(csv))
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedRecordError, got %v", err)
	}
	if malformed.Row != 3 {
		t.Errorf("Expected failure on row 3, got %d", malformed.Row)
	}
}

func TestParse_MissingTitleColumn(t *testing.T) {
	csv := `segment,status
FinTech,Operating
`
	if _, err := Parse(strings.NewReader(csv)); err == nil {
		t.Error("Expected error for dataset without a title column")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("Expected error for dataset without a header")
	}
}

func TestNormalizeInvestment(t *testing.T) {
	tests := []struct {
		raw     string
		seeking bool
		amount  float64 // 0 means absent
	}{
		{"", false, 0},
		{"Axtarılmır", false, 0},
		{"No data", false, 0},
		{"25 min AZN-dək", true, 25000},
		{"50 min AZN-dək", true, 50000},
		{"100 min AZN", true, 100000},
		{"İnvestisiya axtarılır", true, 0},
	}
	for _, tt := range tests {
		seeking, amount := normalizeInvestment(tt.raw)
		if seeking != tt.seeking {
			t.Errorf("%q: expected seeking=%v, got %v", tt.raw, tt.seeking, seeking)
		}
		if tt.amount == 0 && amount != nil {
			t.Errorf("%q: expected no amount, got %v", tt.raw, *amount)
		}
		if tt.amount != 0 && (amount == nil || *amount != tt.amount) {
			t.Errorf("%q: expected amount %v, got %v", tt.raw, tt.amount, amount)
		}
	}
}
