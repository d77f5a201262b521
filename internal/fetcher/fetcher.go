package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/transcript"
)

// videoInfo is the subset of yt-dlp's --dump-json output we use.
type videoInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Channel    string  `json:"channel"`
	Uploader   string  `json:"uploader"`
	Duration   float64 `json:"duration"`
	WebpageURL string  `json:"webpage_url"`
}

// Fetch reads metadata and captions for videoURL.
func (f *implFetcher) Fetch(ctx context.Context, videoURL string) (*Result, error) {
	info, err := f.fetchInfo(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	meta := models.VideoMetadata{
		Title:           info.Title,
		Channel:         info.Channel,
		URL:             info.WebpageURL,
		DurationSeconds: int(info.Duration),
	}
	if meta.Channel == "" {
		meta.Channel = info.Uploader
	}
	if meta.URL == "" {
		meta.URL = videoURL
	}

	captions, err := f.fetchCaptions(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	if captions == "" {
		f.logger.Warn(ctx, "No captions available for %s", videoURL)
	}

	return &Result{Meta: meta, Transcript: captions}, nil
}

func (f *implFetcher) fetchInfo(ctx context.Context, videoURL string) (*videoInfo, error) {
	out, err := f.executor.Execute(ctx, f.cfg.BinaryPath, "--dump-json", "--skip-download", "--no-warnings", videoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch video info: %w", err)
	}

	var info videoInfo
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &info); err != nil {
		return nil, fmt.Errorf("decode video info: %w", err)
	}
	return &info, nil
}

// fetchCaptions downloads subtitles into a scratch directory and converts
// the preferred file into a transcript.
func (f *implFetcher) fetchCaptions(ctx context.Context, videoURL string) (string, error) {
	if err := os.MkdirAll(f.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	dir, err := os.MkdirTemp(f.tempDir, "captions-*")
	if err != nil {
		return "", fmt.Errorf("create caption dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			f.logger.Warn(ctx, "Failed to cleanup %s: %v", dir, err)
		}
	}()

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(f.cfg.Languages, ","),
		"--sub-format", "vtt/srt/best",
		"--no-warnings",
		"-o", "captions.%(ext)s",
		videoURL,
	}

	f.logger.Debug(ctx, "Running %s %s", f.cfg.BinaryPath, strings.Join(args, " "))
	if _, err := f.executor.ExecuteInDir(ctx, dir, f.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("download captions: %w", err)
	}

	path, err := f.pickCaptionFile(dir)
	if err != nil || path == "" {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}
	return transcript.FromCaptions(string(data)), nil
}

// pickCaptionFile prefers languages in configured order, then any caption
// file. It returns "" when none were written.
func (f *implFetcher) pickCaptionFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("list captions: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && transcript.IsCaptionFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return "", nil
	}
	sort.Strings(files)

	for _, lang := range f.cfg.Languages {
		for _, name := range files {
			if strings.Contains(name, "."+lang+".") {
				return filepath.Join(dir, name), nil
			}
		}
	}
	return filepath.Join(dir, files[0]), nil
}
