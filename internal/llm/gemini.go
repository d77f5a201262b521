package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
)

type geminiClient struct {
	cfg  config.LLMConfig
	keys KeySource
}

func newGemini(cfg config.LLMConfig, keys KeySource) *geminiClient {
	return &geminiClient{cfg: cfg, keys: keys}
}

func (g *geminiClient) Name() string {
	return config.ProviderGemini
}

// Generate sends prompt to Gemini. A client is created per call so a changed
// key takes effect immediately.
func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	key, err := g.keys.APIKey()
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	cc := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if g.cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.cfg.Model, GeminiContents(prompt), g.generateConfig())
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

func (g *geminiClient) generateConfig() *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if g.cfg.Temperature > 0 {
		gc.Temperature = genai.Ptr(g.cfg.Temperature)
	}
	if g.cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(g.cfg.MaxTokens)
	}
	return gc
}

// GeminiContents wraps prompt in the content list Gemini expects.
func GeminiContents(prompt string) []*genai.Content {
	return genai.Text(prompt)
}

// GeminiEnvelope is the REST body of a generateContent call.
type GeminiEnvelope struct {
	Contents []GeminiEnvelopeContent `json:"contents"`
}

type GeminiEnvelopeContent struct {
	Parts []GeminiEnvelopePart `json:"parts"`
}

type GeminiEnvelopePart struct {
	Text string `json:"text"`
}

// NewGeminiEnvelope builds {"contents":[{"parts":[{"text":prompt}]}]}.
func NewGeminiEnvelope(prompt string) GeminiEnvelope {
	return GeminiEnvelope{
		Contents: []GeminiEnvelopeContent{
			{Parts: []GeminiEnvelopePart{{Text: prompt}}},
		},
	}
}
