package generator

import (
	"context"
	"errors"
	"slices"
	"strings"

	"google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"

	generateContentAction = "generateContent"
)

// Gemini implements TextGenerator with the Google Gen AI SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, s Settings) (*Gemini, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, errors.New("gemini api key missing; set GEMINI_API_KEY")
	}
	model := s.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

// ListModels returns the models that support content generation.
func (g *Gemini) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo
	for m, err := range g.client.Models.All(ctx) {
		if err != nil {
			return out, err
		}
		if !slices.Contains(m.SupportedActions, generateContentAction) {
			continue
		}
		out = append(out, ModelInfo{Name: m.Name, DisplayName: m.DisplayName})
	}
	return out, nil
}
