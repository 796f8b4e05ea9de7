package generator

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator abstracts the generative-language model so it can be swapped or mocked.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelInfo describes a model the provider can use for text generation.
type ModelInfo struct {
	Name        string
	DisplayName string
}

// ModelLister is implemented by providers that can enumerate their models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Settings is the provider-independent client configuration.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// New builds the client for the configured provider. It performs no network calls
// beyond what the provider SDK needs to construct a client.
func New(ctx context.Context, s Settings) (TextGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(s.Provider)) {
	case "", ProviderGemini:
		g, err := NewGemini(ctx, s)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderOpenAI:
		o, err := NewOpenAI(s)
		if err != nil {
			return nil, err
		}
		return o, nil
	case ProviderMock:
		return MockGenerator{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", s.Provider)
	}
}
