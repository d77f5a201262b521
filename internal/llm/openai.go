package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
)

type openAIClient struct {
	cfg  config.LLMConfig
	keys KeySource
}

func newOpenAI(cfg config.LLMConfig, keys KeySource) *openAIClient {
	return &openAIClient{cfg: cfg, keys: keys}
}

func (o *openAIClient) Name() string {
	return config.ProviderOpenAI
}

// Generate works against OpenAI or any compatible endpoint set in base_url.
func (o *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	key, err := o.keys.APIKey()
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	clientConfig := openai.DefaultConfig(key)
	if o.cfg.BaseURL != "" {
		clientConfig.BaseURL = o.cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	resp, err := client.CreateChatCompletion(ctx, OpenAIRequest(o.cfg, prompt))
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// OpenAIRequest wraps prompt as a single user message asking for a JSON object.
func OpenAIRequest(cfg config.LLMConfig, prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
}
