package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Turn video transcripts into structured study summaries",
	Long: `digest summarizes video transcripts with a generative language model.

Transcripts can be plain "m:ss text" lines, SRT/VTT caption files, or JSON
payloads with video_title, channel_name, video_url, duration_seconds and
transcript fields.

Examples:
  digest summarize talk.txt --title "Go Concurrency"
  digest summarize captions.vtt --format markdown --out talk.md
  digest parse talk.srt
  digest meta https://www.youtube.com/watch?v=dQw4w9WgXcQ
  digest fetch https://youtu.be/dQw4w9WgXcQ --format docx --out talk.docx`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress")

	rootCmd.AddCommand(summarizeCmd, parseCmd, metaCmd, fetchCmd)
}

// loadConfig reads --config, or falls back to defaults plus a .env in the
// working directory.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}
	return config.Default(), nil
}

func newLogger(cfg *config.Config) logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	return logger.New("debug", cfg.Logging.Format)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
