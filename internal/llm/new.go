package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
)

// New returns the Client for cfg.Provider. The key is not read here; each
// Generate call resolves it through keys.
func New(cfg config.LLMConfig, keys KeySource) (Client, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return newGemini(cfg, keys), nil
	case config.ProviderOpenAI:
		return newOpenAI(cfg, keys), nil
	case config.ProviderAnthropic:
		return newAnthropic(cfg, keys), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// RequestPayload returns the request body Generate would send for prompt
// under cfg. Gemini is shown in its REST envelope form.
func RequestPayload(cfg config.LLMConfig, prompt string) any {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return OpenAIRequest(cfg, prompt)
	case config.ProviderAnthropic:
		return AnthropicParams(cfg, prompt)
	default:
		return NewGeminiEnvelope(prompt)
	}
}
