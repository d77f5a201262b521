package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tubedigest/internal/fetcher"
	"github.com/nguyentantai21042004/tubedigest/pkg/executor"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download captions with yt-dlp and summarize them",
	Long: `Fetch metadata and captions for a video with yt-dlp, then summarize.

Caption languages follow fetcher.languages in the config. A video without
captions still produces a summary carrying the TRANSCRIPT_MISSING error.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	addOutputFlags(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	f := fetcher.New(cfg.Fetcher, cfg.Paths.Temp, executor.New(), log)
	res, err := f.Fetch(ctx, args[0])
	if err != nil {
		return err
	}

	sum, err := newSummarizer(cfg)
	if err != nil {
		return err
	}
	summary, err := sum.Summarize(ctx, res.Meta, res.Transcript)
	if err != nil {
		return err
	}
	return writeSummary(summary)
}
