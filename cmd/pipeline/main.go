package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
	"github.com/nguyentantai21042004/tubedigest/internal/llm"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/processor"
	"github.com/nguyentantai21042004/tubedigest/internal/quota"
	"github.com/nguyentantai21042004/tubedigest/internal/scraper"
	"github.com/nguyentantai21042004/tubedigest/internal/server"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
	"github.com/nguyentantai21042004/tubedigest/internal/watcher"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Summary Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// The key is read per call, so a missing key only degrades summaries
	// to the local fallback instead of stopping the daemon.
	client, err := llm.New(cfg.LLM, config.NewCredential(cfg.LLM))
	if err != nil {
		log.Error(ctx, "Failed to create LLM client: %v", err)
		os.Exit(1)
	}
	limiter := quota.New(cfg.Quota)
	sum := summarizer.New(client, limiter, log, cfg.LLM.Timeout)
	proc := processor.New(cfg, sum, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := proc.ProcessBacklog(ctx); err != nil {
		log.Warn(ctx, "Backlog sweep interrupted: %v", err)
	}

	w, err := watcher.New(cfg.Paths.Input, processor.IsSupported, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	errChan := make(chan error, 2)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("watcher: %w", err)
		}
	}()

	if cfg.Server.Enabled {
		srv := server.New(cfg.Server.Addr, sum, scraper.NewOEmbed(""), log)
		go func() {
			if err := srv.Start(ctx); err != nil {
				errChan <- fmt.Errorf("server: %w", err)
			}
		}()
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s (%v)", cfg.Paths.Output, cfg.Export.Formats)
	if cfg.Server.Enabled {
		log.Info(ctx, "API: http://%s", cfg.Server.Addr)
	}
	if remaining := limiter.Remaining(); remaining >= 0 {
		log.Info(ctx, "Daily LLM quota: %d requests", remaining)
	}
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "%v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates the drop-folder layout.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
