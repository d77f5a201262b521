package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tubedigest/internal/export"
	"github.com/nguyentantai21042004/tubedigest/internal/processor"
	"github.com/nguyentantai21042004/tubedigest/internal/transcript"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Split a transcript into timed segments",
	Long: `Parse a transcript file into {time_seconds, text} segments.

JSON output goes to stdout unless --out is given. --format docx writes a
timed transcript document and requires --out.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&outFormat, "format", "f", export.FormatJSON, "output format: json or docx")
	parseCmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to this file")
}

func runParse(cmd *cobra.Command, args []string) error {
	meta, text, err := processor.ReadInput(args[0])
	if err != nil {
		return err
	}
	segments := transcript.Parse(text)

	switch outFormat {
	case export.FormatDOCX:
		if outPath == "" {
			return fmt.Errorf("docx output needs --out")
		}
		return export.WriteTranscriptDOCX(meta.Title, segments, outPath)
	case export.FormatJSON:
		if outPath == "" {
			return printJSON(os.Stdout, segments)
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return printJSON(f, segments)
	default:
		return fmt.Errorf("unsupported format %q", outFormat)
	}
}
