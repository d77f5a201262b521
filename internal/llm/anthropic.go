package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
)

type anthropicClient struct {
	cfg  config.LLMConfig
	keys KeySource
}

func newAnthropic(cfg config.LLMConfig, keys KeySource) *anthropicClient {
	return &anthropicClient{cfg: cfg, keys: keys}
}

func (a *anthropicClient) Name() string {
	return config.ProviderAnthropic
}

func (a *anthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	key, err := a.keys.APIKey()
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
	}
	if a.cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(a.cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	message, err := client.Messages.New(ctx, AnthropicParams(a.cfg, prompt))
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// AnthropicParams wraps prompt as a single user text block.
func AnthropicParams(cfg config.LLMConfig, prompt string) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(cfg.Model),
		MaxTokens: int64(cfg.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(cfg.Temperature))
	}
	return params
}
