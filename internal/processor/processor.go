package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/tubedigest/internal/export"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
)

// Process moves the file into the processing folder, summarizes it, writes
// the configured exports and archives the source.
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	startTime := time.Now()

	p.logger.Info(ctx, "Starting summary job: %s", inputPath)

	workPath, err := p.moveToProcessing(ctx, inputPath)
	if err != nil {
		return err
	}

	meta, text, err := ReadInput(workPath)
	if err != nil {
		p.moveToFailed(ctx, workPath)
		return err
	}

	summary, err := p.summarizer.Summarize(ctx, meta, text)
	if err != nil {
		// Cancelled: hand the file back to the input folder for the next run.
		if mvErr := p.moveTo(context.WithoutCancel(ctx), p.cfg.Paths.Input, workPath); mvErr != nil {
			p.logger.Warn(ctx, "Failed to return %s to input folder: %v", workPath, mvErr)
		}
		return fmt.Errorf("summarize: %w", err)
	}

	stem := fileStem(workPath)
	written, err := export.WriteFiles(summary, p.cfg.Paths.Output, stem, p.cfg.Export.Formats)
	if err != nil {
		p.moveToFailed(ctx, workPath)
		return fmt.Errorf("export: %w", err)
	}

	if err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to move source to archived folder: %v", err)
	}

	if sumErr := summarizer.SummaryError(summary); sumErr != nil {
		p.logger.Warn(ctx, "Summary for %s carries an error: %v", stem, sumErr)
	}
	p.logger.Info(ctx, "Summary job done in %s (source: %s): %s",
		time.Since(startTime), summary.Source, strings.Join(written, ", "))
	return nil
}

// ProcessBacklog runs Process over supported files already in the input
// folder, at most max_concurrent at a time.
func (p *implProcessor) ProcessBacklog(ctx context.Context) error {
	files, err := p.discoverInputs()
	if err != nil {
		return fmt.Errorf("discover inputs: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	p.logger.Info(ctx, "Found %d waiting files in %s", len(files), p.cfg.Paths.Input)

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	dispatched, failCount := 0, 0

	for _, path := range files {
		if err := sem.acquire(ctx); err != nil {
			break
		}
		dispatched++
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				mu.Lock()
				failCount++
				mu.Unlock()
			}
		}(path)
	}
	wg.Wait()

	p.logger.Info(ctx, "Backlog complete: %d success, %d failed, %d not started",
		dispatched-failCount, failCount, len(files)-dispatched)
	return ctx.Err()
}

func (p *implProcessor) discoverInputs() ([]string, error) {
	entries, err := os.ReadDir(p.cfg.Paths.Input)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsSupported(e.Name()) {
			files = append(files, filepath.Join(p.cfg.Paths.Input, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
