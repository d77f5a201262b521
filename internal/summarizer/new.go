package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/tubedigest/internal/llm"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
)

type implSummarizer struct {
	client  llm.Client
	limiter Limiter
	logger  logger.Logger
	timeout time.Duration
}

// New creates a Summarizer backed by client. limiter may be nil. A zero
// timeout leaves the deadline to the caller's context.
func New(client llm.Client, limiter Limiter, log logger.Logger, timeout time.Duration) Summarizer {
	return &implSummarizer{
		client:  client,
		limiter: limiter,
		logger:  log,
		timeout: timeout,
	}
}
