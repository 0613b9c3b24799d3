package api

import "testing"

func TestParseTrendSeries(t *testing.T) {
	body := []byte(`{
		"results": [
			{
				"title": "tent chair",
				"data": [
					{"period": "2024-01-01", "ratio": 50.5},
					{"period": "2024-02-01", "ratio": 100}
				]
			}
		]
	}`)

	series, err := parseTrendSeries(body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(series))
	}
	if series[0].Period != "2024-01-01" || series[0].Ratio != 50.5 {
		t.Errorf("Unexpected first point: %+v", series[0])
	}
	if series[1].Period != "2024-02-01" || series[1].Ratio != 100 {
		t.Errorf("Unexpected second point: %+v", series[1])
	}
}

func TestParseTrendSeries_NoResults(t *testing.T) {
	series, err := parseTrendSeries([]byte(`{"results": []}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("Expected empty series, got %d points", len(series))
	}
}

func TestParseTrendSeries_EmptyData(t *testing.T) {
	series, err := parseTrendSeries([]byte(`{"results": [{"title": "k", "data": []}]}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("Expected empty series, got %d points", len(series))
	}
}

func TestParseTrendSeries_MalformedJSON(t *testing.T) {
	_, err := parseTrendSeries([]byte(`{"results": [`))
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}
