package fetcher

import (
	"github.com/nguyentantai21042004/tubedigest/internal/config"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/pkg/executor"
)

type implFetcher struct {
	cfg      config.FetcherConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Fetcher that shells out to yt-dlp. Caption files are
// written below tempDir and removed after reading.
func New(cfg config.FetcherConfig, tempDir string, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}
