package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToProcessing claims an input file so a second event for the same
// file finds nothing to do.
func (p *implProcessor) moveToProcessing(ctx context.Context, inputPath string) (string, error) {
	destPath := filepath.Join(p.cfg.Paths.Processing, filepath.Base(inputPath))

	p.logger.Debug(ctx, "Moving to processing folder: %s -> %s", inputPath, destPath)

	if err := os.MkdirAll(p.cfg.Paths.Processing, 0755); err != nil {
		return "", fmt.Errorf("create processing dir: %w", err)
	}
	if err := os.Rename(inputPath, destPath); err != nil {
		return "", fmt.Errorf("move to processing: %w", err)
	}

	return destPath, nil
}

// moveToArchived moves a finished source file out of the processing folder.
func (p *implProcessor) moveToArchived(ctx context.Context, workPath string) error {
	return p.moveTo(ctx, p.cfg.Paths.Archived, workPath)
}

// moveToFailed parks an unreadable source file next to the archive.
func (p *implProcessor) moveToFailed(ctx context.Context, workPath string) {
	if err := p.moveTo(ctx, filepath.Join(p.cfg.Paths.Archived, "failed"), workPath); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to failed folder: %v", workPath, err)
	}
}

func (p *implProcessor) moveTo(ctx context.Context, dir, workPath string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	destPath := filepath.Join(dir, filepath.Base(workPath))
	p.logger.Debug(ctx, "Moving %s -> %s", workPath, destPath)

	if err := os.Rename(workPath, destPath); err != nil {
		return fmt.Errorf("move %s: %w", workPath, err)
	}
	return nil
}
