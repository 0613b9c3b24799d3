package rescale

import (
	"math"
	"testing"
)

func TestRescale_AnchorsLastPointToBaseline(t *testing.T) {
	baseline := Baseline{ResolvedKeyword: "tent chair", TotalVolume: 10000}
	series := []RelativePoint{
		{Period: "2024-01", Ratio: 50},
		{Period: "2024-02", Ratio: 100},
	}

	result := Rescale(baseline, series)

	if len(result) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(result))
	}
	if result[0].Volume != 5000 {
		t.Errorf("Expected first volume 5000, got %d", result[0].Volume)
	}
	if result[1].Volume != 10000 {
		t.Errorf("Expected last volume anchored to 10000, got %d", result[1].Volume)
	}
}

func TestRescale_ZeroLastRatioCollapsesSeries(t *testing.T) {
	baseline := Baseline{TotalVolume: 10000}
	series := []RelativePoint{
		{Period: "2024-01", Ratio: 30},
		{Period: "2024-02", Ratio: 0},
	}

	result := Rescale(baseline, series)

	for _, p := range result {
		if p.Volume != 0 {
			t.Errorf("Expected all volumes 0 with zero last ratio, got %d at %s", p.Volume, p.Period)
		}
	}
}

func TestRescale_SinglePointZeroRatio(t *testing.T) {
	baseline := Baseline{TotalVolume: 10000}
	series := []RelativePoint{{Period: "2024-01", Ratio: 0}}

	result := Rescale(baseline, series)

	if len(result) != 1 {
		t.Fatalf("Expected 1 point, got %d", len(result))
	}
	if result[0].Volume != 0 {
		t.Errorf("Expected volume 0, got %d", result[0].Volume)
	}

	growth := Growth(result)
	if growth.MoM.Defined {
		t.Error("Expected MoM undefined for single-point series")
	}
}

func TestRescale_EmptySeries(t *testing.T) {
	result := Rescale(Baseline{TotalVolume: 500}, nil)
	if result != nil {
		t.Errorf("Expected nil result for empty series, got %v", result)
	}
}

func TestRescale_ZeroBaseline(t *testing.T) {
	series := []RelativePoint{
		{Period: "2024-01", Ratio: 40},
		{Period: "2024-02", Ratio: 80},
	}

	result := Rescale(Baseline{TotalVolume: 0}, series)

	for _, p := range result {
		if p.Volume != 0 {
			t.Errorf("Expected all-zero series for zero baseline, got %d at %s", p.Volume, p.Period)
		}
	}
}

func TestRescale_VolumesAreRoundedAndNonNegative(t *testing.T) {
	baseline := Baseline{TotalVolume: 1000}
	series := []RelativePoint{
		{Period: "2024-01", Ratio: 33.3},
		{Period: "2024-02", Ratio: 66.7},
		{Period: "2024-03", Ratio: 99.9},
	}

	result := Rescale(baseline, series)

	lastRatio := series[len(series)-1].Ratio
	multiplier := float64(baseline.TotalVolume) / lastRatio
	for i, p := range result {
		if p.Volume < 0 {
			t.Errorf("Volume must never be negative, got %d", p.Volume)
		}
		want := int(math.Round(series[i].Ratio * multiplier))
		if p.Volume != want {
			t.Errorf("Point %d: expected %d, got %d", i, want, p.Volume)
		}
	}
}

func TestGrowth_MoM(t *testing.T) {
	series := []AbsolutePoint{
		{Period: "2024-01", Volume: 5000},
		{Period: "2024-02", Volume: 10000},
	}

	growth := Growth(series)

	if !growth.MoM.Defined {
		t.Fatal("Expected MoM defined")
	}
	if growth.MoM.Value != 100.0 {
		t.Errorf("Expected MoM 100.0, got %v", growth.MoM.Value)
	}
	if growth.YoY.Defined {
		t.Error("Expected YoY undefined for series shorter than 13")
	}
}

func TestGrowth_MoMUndefinedOnZeroDenominator(t *testing.T) {
	series := []AbsolutePoint{
		{Period: "2024-01", Volume: 0},
		{Period: "2024-02", Volume: 300},
	}

	growth := Growth(series)

	if growth.MoM.Defined {
		t.Error("Expected MoM undefined when previous volume is 0")
	}
}

func TestGrowth_YoY(t *testing.T) {
	series := make([]AbsolutePoint, 13)
	for i := range series {
		series[i] = AbsolutePoint{Volume: 1000 + i*100}
	}
	// series[0] = 1000, series[12] = 2200

	growth := Growth(series)

	if !growth.YoY.Defined {
		t.Fatal("Expected YoY defined for 13-point series")
	}
	if growth.YoY.Value != 120.0 {
		t.Errorf("Expected YoY 120.0, got %v", growth.YoY.Value)
	}
}

func TestGrowth_YoYUndefinedCases(t *testing.T) {
	tests := []struct {
		name   string
		series []AbsolutePoint
	}{
		{
			name: "only 12 points",
			series: func() []AbsolutePoint {
				s := make([]AbsolutePoint, 12)
				for i := range s {
					s[i] = AbsolutePoint{Volume: 100}
				}
				return s
			}(),
		},
		{
			name: "zero volume 13 periods back",
			series: func() []AbsolutePoint {
				s := make([]AbsolutePoint, 13)
				for i := range s {
					s[i] = AbsolutePoint{Volume: 100}
				}
				s[0].Volume = 0
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			growth := Growth(tt.series)
			if growth.YoY.Defined {
				t.Error("Expected YoY undefined")
			}
		})
	}
}

func TestGrowth_EmptySeries(t *testing.T) {
	growth := Growth(nil)
	if growth.MoM.Defined || growth.YoY.Defined {
		t.Error("Expected no metrics for empty series")
	}
}

func TestGrowth_NegativeGrowth(t *testing.T) {
	series := []AbsolutePoint{
		{Volume: 8000},
		{Volume: 6000},
	}

	growth := Growth(series)

	if !growth.MoM.Defined {
		t.Fatal("Expected MoM defined")
	}
	if growth.MoM.Value != -25.0 {
		t.Errorf("Expected MoM -25.0, got %v", growth.MoM.Value)
	}
}
