package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"keyword-insight/internal/config"
	"keyword-insight/internal/service"
	"keyword-insight/pkg/api"
	"keyword-insight/pkg/cache"
	"keyword-insight/pkg/errs"
	"keyword-insight/pkg/export"
	"keyword-insight/pkg/logger"
	"keyword-insight/pkg/rescale"
)

const dateLayout = "2006-01-02"

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// .env is optional; real deployments pass env vars directly.
	_ = godotenv.Load()

	var (
		keyword    = flag.String("keyword", getEnvOrDefault("KEYWORD", ""), "Keyword to analyze (env: KEYWORD)")
		startDate  = flag.String("start", "", "Start date YYYY-MM-DD (default: 370 days ago)")
		endDate    = flag.String("end", "", "End date YYYY-MM-DD (default: today)")
		configPath = flag.String("config", getEnvOrDefault("CONFIG_PATH", "config/config.yaml"), "Configuration file path (env: CONFIG_PATH)")
		outDir     = flag.String("out", ".", "Directory for the CSV export")
		noCSV      = flag.Bool("no-csv", false, "Skip writing the CSV export")
	)
	flag.Parse()

	log := logger.GetLogger().WithField("component", "main")

	if *keyword == "" {
		fmt.Println("ERROR: a keyword is required.")
		fmt.Println("Use -keyword flag or KEYWORD environment variable.")
		os.Exit(1)
	}

	cfg, err := config.NewManager().Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	logger.SetLogger(logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}))

	if err := cfg.NaverAPI.ValidateCredentials(); err != nil {
		fmt.Printf("ERROR: %v\n\n%s\n", err, config.SetupGuide())
		os.Exit(1)
	}

	start, end, err := parseRange(*startDate, *endDate)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	fetchCache := cache.NewMemoryCache(cfg.Cache.Size, ttl)

	insight := service.NewInsightService(
		api.NewVolumeClient(cfg.NaverAPI.AdCredentials(), fetchCache),
		api.NewTrendClient(cfg.NaverAPI.DatalabCredentials(), fetchCache),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := insight.Analyze(ctx, *keyword, start, end)
	if err != nil {
		switch {
		case errs.IsNoResult(err):
			fmt.Println("No result: the keyword has too little volume, or is misspelled.")
		case errs.IsTransport(err):
			fmt.Printf("Upstream request failed: %v\n", err)
		default:
			fmt.Printf("Analysis failed: %v\n", err)
		}
		os.Exit(1)
	}

	printReport(report)

	if !*noCSV && len(report.Series) > 0 {
		data, err := export.CSV(report.Series)
		if err != nil {
			log.WithError(err).Fatal("Failed to build CSV export")
		}
		path := filepath.Join(*outDir, export.Filename(report.Baseline.ResolvedKeyword))
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.WithError(err).Fatal("Failed to write CSV export")
		}
		fmt.Printf("\nCSV written to %s\n", path)
	}
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if startStr != "" {
		if start, err = time.Parse(dateLayout, startStr); err != nil {
			return start, end, fmt.Errorf("invalid start date %q: want YYYY-MM-DD", startStr)
		}
	}
	if endStr != "" {
		if end, err = time.Parse(dateLayout, endStr); err != nil {
			return start, end, fmt.Errorf("invalid end date %q: want YYYY-MM-DD", endStr)
		}
	}
	return start, end, nil
}

func printReport(report *service.Report) {
	fmt.Printf("\n=== Keyword Insight: %s ===\n", report.Baseline.ResolvedKeyword)
	if report.Baseline.Fallback {
		fmt.Println("Note: no exact match for the keyword, showing the closest candidate.")
	}
	fmt.Printf("Range: %s .. %s\n", report.Start, report.End)
	fmt.Printf("Total Volume (30 days): %d\n", report.Baseline.TotalVolume)
	fmt.Printf("Competition: %s\n", report.Baseline.CompIdx)
	fmt.Printf("MoM: %s\n", formatMetric(report.Growth.MoM))
	fmt.Printf("YoY: %s\n", formatMetric(report.Growth.YoY))

	if len(report.Series) == 0 {
		fmt.Println("\nNo trend data available for this range.")
		return
	}

	fmt.Println("\nPeriod      Ratio     Volume")
	for _, p := range report.Series {
		fmt.Printf("%-10s  %8.2f  %9d\n", p.Period, p.Ratio, p.Volume)
	}
}

// formatMetric renders an undefined metric as "-" so it cannot be read as
// a true 0%.
func formatMetric(m rescale.Metric) string {
	if !m.Defined {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", m.Value)
}
