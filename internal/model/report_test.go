package model

import "testing"

func TestCellKey_DistinctPairsNeverCollide(t *testing.T) {
	pairs := [][2][2]string{
		{{"a|b", "c"}, {"a", "b|c"}},
		{{"a|", "b"}, {"a", "|b"}},
		{{`a\`, "|b"}, {`a\|`, "b"}},
	}
	for _, p := range pairs {
		left := CellKey(p[0][0], p[0][1])
		right := CellKey(p[1][0], p[1][1])
		if left == right {
			t.Errorf("Expected distinct keys for %v and %v, both got %q", p[0], p[1], left)
		}
	}

	if CellKey("a|b", "c") != CellKey("a|b", "c") {
		t.Error("Expected a stable key for the same pair")
	}
}

func TestCrossTab_MatrixWithSeparatorInCategory(t *testing.T) {
	ct := CrossTab{
		AttributeA: "segment",
		AttributeB: "status",
		ValuesA:    []string{"fin|tech"},
		ValuesB:    []string{"operating"},
		Cells:      map[string]int{CellKey("fin|tech", "operating"): 7},
	}
	m := ct.Matrix()
	if m[0][0] != 7 {
		t.Errorf("Expected 7, got %d", m[0][0])
	}
}

func TestHistogramBucket_Label(t *testing.T) {
	upper := 5.0
	tests := []struct {
		bucket HistogramBucket
		want   string
	}{
		{HistogramBucket{Lower: 0, Upper: &upper}, "0–5"},
		{HistogramBucket{Lower: 20}, "20+"},
		{HistogramBucket{Unspecified: true}, "unspecified"},
	}
	for _, tt := range tests {
		if got := tt.bucket.Label(); got != tt.want {
			t.Errorf("Expected label %q, got %q", tt.want, got)
		}
	}
}
