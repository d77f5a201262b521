package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tubedigest/internal/scraper"
)

var withTranscript bool

var metaCmd = &cobra.Command{
	Use:   "meta <watch-url|html-file>",
	Short: "Show video metadata",
	Long: `Show title, channel, URL and duration for a video.

A URL or bare video id is looked up through oEmbed, which carries no
duration. A saved watch page HTML file is scraped instead, and
--transcript also prints its open transcript panel.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeta,
}

func init() {
	metaCmd.Flags().BoolVar(&withTranscript, "transcript", false, "print the transcript panel of an html file")
}

func runMeta(cmd *cobra.Command, args []string) error {
	target := args[0]

	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return metaFromPage(target)
	}

	id, err := scraper.ExtractVideoID(target)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	meta, err := scraper.NewOEmbed("").Lookup(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, meta)
}

func metaFromPage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	page, err := scraper.ParsePage(f, "")
	if err != nil {
		return err
	}
	if err := printJSON(os.Stdout, page.Metadata()); err != nil {
		return err
	}

	if withTranscript {
		text := page.Transcript()
		if text == "" {
			return fmt.Errorf("no transcript panel found in %s", path)
		}
		fmt.Println(text)
	}
	return nil
}
