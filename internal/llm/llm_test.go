package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
)

func TestNewSelectsProvider(t *testing.T) {
	keys := config.StaticCredential("k")

	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{provider: config.ProviderGemini, want: "gemini"},
		{provider: "", want: "gemini"},
		{provider: config.ProviderOpenAI, want: "openai"},
		{provider: config.ProviderAnthropic, want: "anthropic"},
		{provider: "cohere", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			c, err := New(config.LLMConfig{Provider: tt.provider}, keys)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}
}

func TestGenerateWithoutKeyFailsBeforeNetwork(t *testing.T) {
	for _, provider := range []string{config.ProviderGemini, config.ProviderOpenAI, config.ProviderAnthropic} {
		t.Run(provider, func(t *testing.T) {
			c, err := New(config.LLMConfig{Provider: provider, Model: "m"}, config.StaticCredential(""))
			require.NoError(t, err)

			_, err = c.Generate(context.Background(), "prompt")
			assert.True(t, errors.Is(err, config.ErrAPIKeyMissing), "got %v", err)
		})
	}
}

func TestGeminiEnvelopeShape(t *testing.T) {
	data, err := json.Marshal(NewGeminiEnvelope("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"contents":[{"parts":[{"text":"hello"}]}]}`, string(data))
}

func TestGeminiContents(t *testing.T) {
	contents := GeminiContents("hello")
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1)
	assert.Equal(t, "hello", contents[0].Parts[0].Text)
}

func TestOpenAIRequest(t *testing.T) {
	req := OpenAIRequest(config.LLMConfig{Model: "gpt-4o-mini", MaxTokens: 100}, "hello")

	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 100, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
	assert.Equal(t, "hello", req.Messages[0].Content)
}

func TestAnthropicParams(t *testing.T) {
	params := AnthropicParams(config.LLMConfig{Model: "claude", MaxTokens: 8000}, "hello")

	assert.Equal(t, int64(8000), params.MaxTokens)
	assert.Len(t, params.Messages, 1)
	assert.False(t, params.Temperature.Valid())
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(errors.New("Error 429, RESOURCE_EXHAUSTED")))
	assert.True(t, IsRateLimited(errors.New("exceeded your current quota")))
	assert.False(t, IsRateLimited(errors.New("connection reset")))
	assert.False(t, IsRateLimited(nil))
}

func TestRequestPayloadPerProvider(t *testing.T) {
	_, ok := RequestPayload(config.LLMConfig{Provider: config.ProviderGemini}, "p").(GeminiEnvelope)
	assert.True(t, ok)

	_, ok = RequestPayload(config.LLMConfig{Provider: config.ProviderOpenAI}, "p").(openai.ChatCompletionRequest)
	assert.True(t, ok)

	req, ok := RequestPayload(config.LLMConfig{Provider: config.ProviderAnthropic, Model: "claude", MaxTokens: 10}, "p").(anthropic.MessageNewParams)
	require.True(t, ok)
	assert.Equal(t, int64(10), req.MaxTokens)
}
