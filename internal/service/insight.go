package service

import (
	"context"
	"strings"
	"time"

	"keyword-insight/pkg/api"
	"keyword-insight/pkg/errs"
	"keyword-insight/pkg/logger"
	"keyword-insight/pkg/rescale"
)

const (
	dateLayout = "2006-01-02"
	// defaultWindowDays covers a bit more than 12 monthly bins so YoY is
	// computable on the default range.
	defaultWindowDays = 370
)

type insightService struct {
	volume api.VolumeFetcher
	trend  api.TrendFetcher
	log    *logger.Logger
}

// NewInsightService wires the two fetchers into the analysis pipeline.
func NewInsightService(volume api.VolumeFetcher, trend api.TrendFetcher) InsightService {
	return &insightService{
		volume: volume,
		trend:  trend,
		log:    logger.GetLogger().WithField("component", "insight_service"),
	}
}

// Analyze fetches the baseline first, then the trend series for the
// resolved keyword spelling, and anchors the series to the baseline. The
// trend fetch depends on the resolved keyword, so the calls are sequential.
func (s *insightService) Analyze(ctx context.Context, keyword string, start, end time.Time) (*Report, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &errs.NoResultError{Keyword: keyword}
	}

	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -defaultWindowDays)
	}
	startDate := start.Format(dateLayout)
	endDate := end.Format(dateLayout)

	baseline, err := s.volume.FetchBaseline(ctx, keyword)
	if err != nil {
		return nil, err
	}

	series, err := s.trend.FetchTrend(ctx, baseline.ResolvedKeyword, startDate, endDate)
	if err != nil {
		return nil, err
	}

	absolute := rescale.Rescale(*baseline, series)
	growth := rescale.Growth(absolute)

	if len(absolute) == 0 {
		s.log.WithField("keyword", baseline.ResolvedKeyword).Warn("Trend endpoint returned no data, metrics skipped")
	}

	s.log.WithFields(map[string]interface{}{
		"keyword":      baseline.ResolvedKeyword,
		"total_volume": baseline.TotalVolume,
		"points":       len(absolute),
	}).Info("Analysis completed")

	return &Report{
		Baseline: *baseline,
		Series:   absolute,
		Growth:   growth,
		Start:    startDate,
		End:      endDate,
	}, nil
}
