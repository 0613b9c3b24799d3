// Package rescale anchors a relative search-trend series to an absolute
// volume baseline and derives period-over-period growth.
//
// The trend API only reports dimensionless ratios; the ad API reports one
// absolute total for the most recent observation window. A single multiplier
// computed from the last ratio ties the two together, so the final point of
// the rescaled series matches the baseline exactly (up to rounding) and all
// earlier points stay proportionally consistent.
package rescale

import "math"

// RelativePoint is one point of the dimensionless trend series.
type RelativePoint struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
}

// Baseline is the absolute search-volume snapshot for the most recent
// observation window, as resolved by the ad API.
type Baseline struct {
	ResolvedKeyword string `json:"resolved_keyword"`
	TotalVolume     int    `json:"total_volume"`
	CompIdx         string `json:"comp_idx"`
	// Fallback is set when the ad API had no exact keyword match and the
	// first candidate record was used instead.
	Fallback bool `json:"fallback,omitempty"`
}

// AbsolutePoint is a trend point scaled to absolute monthly volume.
type AbsolutePoint struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
	Volume int     `json:"volume"`
}

// Metric is a percentage that may be undefined. Undefined is distinct from
// a true 0%: growth against a zero-volume period has no meaningful value.
type Metric struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// GrowthMetrics holds the derived month-over-month and year-over-year
// growth of the rescaled series.
type GrowthMetrics struct {
	MoM Metric `json:"mom"`
	YoY Metric `json:"yoy"`
}

// Rescale converts a relative series into absolute volumes using a single
// multiplier anchored at the last point. A zero last ratio collapses the
// whole series to zero instead of dividing by zero. Volumes are rounded to
// the nearest integer and never negative.
func Rescale(baseline Baseline, series []RelativePoint) []AbsolutePoint {
	if len(series) == 0 {
		return nil
	}

	lastRatio := series[len(series)-1].Ratio
	multiplier := 0.0
	if lastRatio > 0 {
		multiplier = float64(baseline.TotalVolume) / lastRatio
	}

	result := make([]AbsolutePoint, len(series))
	for i, p := range series {
		vol := int(math.Round(p.Ratio * multiplier))
		if vol < 0 {
			vol = 0
		}
		result[i] = AbsolutePoint{
			Period: p.Period,
			Ratio:  p.Ratio,
			Volume: vol,
		}
	}
	return result
}

// Growth derives MoM and YoY from an absolute series. MoM needs at least
// 2 points, YoY at least 13 (twelve months back plus the current one).
// Either metric is undefined when its denominator period has zero volume.
func Growth(series []AbsolutePoint) GrowthMetrics {
	var g GrowthMetrics

	n := len(series)
	if n < 2 {
		return g
	}
	curr := series[n-1].Volume

	if prev := series[n-2].Volume; prev > 0 {
		g.MoM = Metric{
			Value:   float64(curr-prev) / float64(prev) * 100,
			Defined: true,
		}
	}

	if n >= 13 {
		if prevYr := series[n-13].Volume; prevYr > 0 {
			g.YoY = Metric{
				Value:   float64(curr-prevYr) / float64(prevYr) * 100,
				Defined: true,
			}
		}
	}

	return g
}
