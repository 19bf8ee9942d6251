package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content_fetcher/internal/config"
	"content_fetcher/internal/media"
	"content_fetcher/internal/publisher"
	"content_fetcher/internal/scheduler"
	"content_fetcher/internal/service"
	"content_fetcher/internal/source/notion"
	"content_fetcher/internal/storage/jsonfile"
	"content_fetcher/internal/storage/sqlite"
)

const defaultWatchInterval = 10 * time.Minute

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	watch := flag.Bool("watch", false, "keep running and re-fetch on the configured interval")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	// Required configuration is checked before anything touches the network
	// or the output directories.
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize Notion source
	source := notion.NewClient(notion.Config{
		APIKey:          cfg.Notion.APIKey,
		BaseURL:         cfg.Notion.BaseURL,
		Version:         cfg.Notion.Version,
		Timeout:         cfg.Notion.Timeout,
		RequestInterval: cfg.Notion.RequestInterval,
	}, logger)

	// Initialize optional media manifest
	var manifest service.ImageManifest
	var mediaManifest media.Manifest
	if cfg.Media.ManifestPath != "" {
		store, err := sqlite.Open(cfg.Media.ManifestPath)
		if err != nil {
			logger.Error("failed to open media manifest", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		manifest = store
		mediaManifest = store
	}

	// Initialize media localizer
	localizer, err := media.New(media.Config{
		ImagesDir:        cfg.Output.ImagesDir,
		PublicPrefix:     cfg.Output.PublicPrefix,
		Timeout:          cfg.Notion.Timeout,
		DownloadInterval: cfg.Notion.RequestInterval,
	}, mediaManifest, logger)
	if err != nil {
		logger.Error("failed to initialize media localizer", "error", err)
		os.Exit(1)
	}

	// Initialize artifact writer
	writer, err := jsonfile.NewWriter(cfg.Output.DataDir, logger)
	if err != nil {
		logger.Error("failed to initialize artifact writer", "error", err)
		os.Exit(1)
	}

	// Initialize optional run-completion publisher
	var pub service.Publisher
	if cfg.Publish.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Publish.URL,
			Exchange:   cfg.Publish.Exchange,
			RoutingKey: cfg.Publish.RoutingKey,
			QueueName:  cfg.Publish.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	fetchService := service.NewFetchService(
		source,
		localizer,
		writer,
		manifest,
		pub,
		logger,
		cfg,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *watch {
		interval := cfg.Watch.Interval
		if interval <= 0 {
			interval = defaultWatchInterval
		}
		sched := scheduler.NewScheduler(fetchService, interval, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	if _, err := fetchService.Run(ctx); err != nil {
		logger.Error("content fetch failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
