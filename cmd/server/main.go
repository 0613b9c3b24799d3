package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"keyword-insight/internal/config"
	"keyword-insight/internal/handler"
	"keyword-insight/internal/service"
	"keyword-insight/pkg/api"
	"keyword-insight/pkg/cache"
	"keyword-insight/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "Configuration file path")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(configPath); err != nil {
		logger.GetLogger().WithError(err).Fatal("Server failed")
	}
}

func run(configPath string) error {
	cfg, err := config.NewManager().Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(log)

	if err := cfg.NaverAPI.ValidateCredentials(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, config.SetupGuide())
		return err
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	fetchCache := cache.NewMemoryCache(cfg.Cache.Size, ttl)

	insight := service.NewInsightService(
		api.NewVolumeClient(cfg.NaverAPI.AdCredentials(), fetchCache),
		api.NewTrendClient(cfg.NaverAPI.DatalabCredentials(), fetchCache),
	)

	app := handler.NewRouter(insight)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutdown signal received...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.WithError(err).Warn("Forced shutdown")
		}
	}()

	log.WithField("addr", addr).Info("Starting keyword-insight server")
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
