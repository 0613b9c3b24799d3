package api

import (
	"context"

	"keyword-insight/pkg/rescale"
)

// AdCredentials authenticates against the search-ad keyword tool API.
type AdCredentials struct {
	APIKey     string
	SecretKey  string
	CustomerID string
}

// DatalabCredentials authenticates against the Datalab trend API.
type DatalabCredentials struct {
	ClientID     string
	ClientSecret string
}

// VolumeFetcher resolves a keyword to its absolute-volume baseline.
type VolumeFetcher interface {
	FetchBaseline(ctx context.Context, keyword string) (*rescale.Baseline, error)
}

// TrendFetcher returns the relative monthly trend series for a keyword
// between two dates (YYYY-MM-DD, inclusive).
type TrendFetcher interface {
	FetchTrend(ctx context.Context, keyword, startDate, endDate string) ([]rescale.RelativePoint, error)
}
