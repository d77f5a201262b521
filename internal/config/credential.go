package config

import (
	"errors"
	"os"
	"strings"
)

// ErrAPIKeyMissing is returned when no api key could be resolved.
var ErrAPIKeyMissing = errors.New("api key not configured")

// ResolveAPIKey returns the stored key when set, otherwise the fallback.
// Both empty is ErrAPIKeyMissing.
func ResolveAPIKey(stored, fallback string) (string, error) {
	if k := strings.TrimSpace(stored); k != "" {
		return k, nil
	}
	if k := strings.TrimSpace(fallback); k != "" {
		return k, nil
	}
	return "", ErrAPIKeyMissing
}

// Credential resolves the api key each time it is asked for, so a key added
// to the environment after startup is picked up on the next call.
type Credential struct {
	EnvVar   string
	Fallback string

	lookup func(string) string
}

// NewCredential builds a Credential from the llm section.
func NewCredential(cfg LLMConfig) Credential {
	return Credential{
		EnvVar:   cfg.APIKeyEnv,
		Fallback: cfg.APIKey,
		lookup:   os.Getenv,
	}
}

// StaticCredential always resolves to key.
func StaticCredential(key string) Credential {
	return Credential{Fallback: key}
}

// APIKey resolves the environment variable first and the configured key
// second.
func (c Credential) APIKey() (string, error) {
	var stored string
	if c.EnvVar != "" {
		lookup := c.lookup
		if lookup == nil {
			lookup = os.Getenv
		}
		stored = lookup(c.EnvVar)
	}
	return ResolveAPIKey(stored, c.Fallback)
}
