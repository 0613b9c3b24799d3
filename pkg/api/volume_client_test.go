package api

import (
	"testing"

	"keyword-insight/pkg/errs"
)

func TestParseBaseline_ExactMatch(t *testing.T) {
	body := []byte(`{
		"keywordList": [
			{"relKeyword": "camp gear", "monthlyPcQcCnt": 100, "monthlyMobileQcCnt": 200, "compIdx": "low"},
			{"relKeyword": "tent chair", "monthlyPcQcCnt": 3000, "monthlyMobileQcCnt": 7000, "compIdx": "high"}
		]
	}`)

	baseline, err := parseBaseline(body, "tentchair")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if baseline.ResolvedKeyword != "tent chair" {
		t.Errorf("Expected resolved keyword 'tent chair', got %q", baseline.ResolvedKeyword)
	}
	if baseline.TotalVolume != 10000 {
		t.Errorf("Expected total volume 10000, got %d", baseline.TotalVolume)
	}
	if baseline.CompIdx != "high" {
		t.Errorf("Expected compIdx 'high', got %q", baseline.CompIdx)
	}
	if baseline.Fallback {
		t.Error("Exact match must not set the fallback flag")
	}
}

func TestParseBaseline_FallbackToFirstRecord(t *testing.T) {
	body := []byte(`{
		"keywordList": [
			{"relKeyword": "camping table", "monthlyPcQcCnt": 500, "monthlyMobileQcCnt": 1500, "compIdx": "mid"},
			{"relKeyword": "camping lamp", "monthlyPcQcCnt": 10, "monthlyMobileQcCnt": 20, "compIdx": "low"}
		]
	}`)

	baseline, err := parseBaseline(body, "tentchair")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if baseline.ResolvedKeyword != "camping table" {
		t.Errorf("Expected first record, got %q", baseline.ResolvedKeyword)
	}
	if !baseline.Fallback {
		t.Error("Expected fallback flag set when no exact match exists")
	}
	if baseline.TotalVolume != 2000 {
		t.Errorf("Expected total volume 2000, got %d", baseline.TotalVolume)
	}
}

func TestParseBaseline_CensoredCounts(t *testing.T) {
	body := []byte(`{
		"keywordList": [
			{"relKeyword": "rare keyword", "monthlyPcQcCnt": "< 10", "monthlyMobileQcCnt": "< 10", "compIdx": "low"}
		]
	}`)

	baseline, err := parseBaseline(body, "rarekeyword")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Each censored count maps to 5.
	if baseline.TotalVolume != 10 {
		t.Errorf("Expected censored total 10, got %d", baseline.TotalVolume)
	}
}

func TestParseBaseline_EmptyList(t *testing.T) {
	body := []byte(`{"keywordList": []}`)

	_, err := parseBaseline(body, "tentchair")
	if err == nil {
		t.Fatal("Expected error for empty keyword list")
	}
	if !errs.IsNoResult(err) {
		t.Errorf("Expected NoResultError, got %T", err)
	}
}

func TestParseBaseline_MalformedJSON(t *testing.T) {
	_, err := parseBaseline([]byte(`{"keywordList": [`), "tentchair")
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}

func TestQueryCount_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"plain number", `{"monthlyPcQcCnt": 12345, "monthlyMobileQcCnt": 0, "relKeyword": "k", "compIdx": "low"}`, 12345},
		{"censored marker", `{"monthlyPcQcCnt": "< 10", "monthlyMobileQcCnt": 0, "relKeyword": "k", "compIdx": "low"}`, 5},
		{"censored no space", `{"monthlyPcQcCnt": "<10", "monthlyMobileQcCnt": 0, "relKeyword": "k", "compIdx": "low"}`, 5},
		{"number as string", `{"monthlyPcQcCnt": "320", "monthlyMobileQcCnt": 0, "relKeyword": "k", "compIdx": "low"}`, 320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline, err := parseBaseline([]byte(`{"keywordList": [`+tt.body+`]}`), "k")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if baseline.TotalVolume != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, baseline.TotalVolume)
			}
		})
	}
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tent chair", "tentchair"},
		{"  tent  chair  ", "tentchair"},
		{"tent\tchair", "tentchair"},
		{"tentchair", "tentchair"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := stripWhitespace(tt.in); got != tt.want {
			t.Errorf("stripWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
