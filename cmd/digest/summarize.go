package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
	"github.com/nguyentantai21042004/tubedigest/internal/export"
	"github.com/nguyentantai21042004/tubedigest/internal/llm"
	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/processor"
	"github.com/nguyentantai21042004/tubedigest/internal/quota"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
)

var (
	sumTitle    string
	sumChannel  string
	sumURL      string
	sumDuration int
	outFormat   string
	outPath     string
	dryRun      bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a transcript file",
	Long: `Summarize a .txt, .srt, .vtt or .json transcript file.

Metadata flags override what the file carries. The summary is printed to
stdout unless --out is given; docx output requires --out.

--dry-run prints the request body that would be sent to the configured
provider without calling it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&sumTitle, "title", "", "video title")
	summarizeCmd.Flags().StringVar(&sumChannel, "channel", "", "channel name")
	summarizeCmd.Flags().StringVar(&sumURL, "url", "", "video URL")
	summarizeCmd.Flags().IntVar(&sumDuration, "duration", 0, "video duration in seconds")
	summarizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the provider request instead of sending it")
	addOutputFlags(summarizeCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outFormat, "format", "f", export.FormatJSON, "output format: json, markdown or docx")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to this file")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	meta, text, err := processor.ReadInput(args[0])
	if err != nil {
		return err
	}
	meta = overrideMetadata(meta)

	if dryRun {
		return printRequest(cfg.LLM, summarizer.BuildPrompt(meta, text))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := newSummarizer(cfg)
	if err != nil {
		return err
	}

	summary, err := sum.Summarize(ctx, meta, text)
	if err != nil {
		return err
	}
	return writeSummary(summary)
}

func overrideMetadata(meta models.VideoMetadata) models.VideoMetadata {
	if sumTitle != "" {
		meta.Title = sumTitle
	}
	if sumChannel != "" {
		meta.Channel = sumChannel
	}
	if sumURL != "" {
		meta.URL = sumURL
	}
	if sumDuration > 0 {
		meta.DurationSeconds = sumDuration
	}
	return meta
}

func newSummarizer(cfg *config.Config) (summarizer.Summarizer, error) {
	client, err := llm.New(cfg.LLM, config.NewCredential(cfg.LLM))
	if err != nil {
		return nil, err
	}
	return summarizer.New(client, quota.New(cfg.Quota), newLogger(cfg), cfg.LLM.Timeout), nil
}

func printRequest(cfg config.LLMConfig, prompt string) error {
	return printJSON(os.Stdout, llm.RequestPayload(cfg, prompt))
}

func writeSummary(s *models.Summary) error {
	if err := summarizer.SummaryError(s); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if outPath != "" {
		if err := export.WriteFile(s, outPath, outFormat); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%s)\n", outPath, s.Source)
		return nil
	}

	if outFormat == export.FormatDOCX {
		return fmt.Errorf("docx output needs --out")
	}
	data, err := export.Render(s, outFormat)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
