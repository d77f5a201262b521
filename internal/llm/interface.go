package llm

import "context"

// Client sends a single prompt to a language model and returns its raw text.
type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// KeySource resolves the api key at call time.
type KeySource interface {
	APIKey() (string, error)
}
