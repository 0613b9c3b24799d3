package service

import (
	"context"
	"time"

	"keyword-insight/pkg/rescale"
)

// Report is the full result of one analysis run: the resolved baseline,
// the rescaled monthly series and the derived growth metrics. An empty
// series means the trend endpoint had no data; metrics are then omitted.
type Report struct {
	Baseline rescale.Baseline        `json:"baseline"`
	Series   []rescale.AbsolutePoint `json:"series"`
	Growth   rescale.GrowthMetrics   `json:"growth"`
	Start    string                  `json:"start_date"`
	End      string                  `json:"end_date"`
}

// InsightService runs the fetch/rescale pipeline for one keyword. Zero
// start/end times select the default window of 370 days ending today.
type InsightService interface {
	Analyze(ctx context.Context, keyword string, start, end time.Time) (*Report, error)
}
