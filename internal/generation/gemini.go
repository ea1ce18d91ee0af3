// Package generation wraps the outbound generation-service call.
package generation

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Generator is the narrow surface the pipeline depends on, so tests can
// substitute a stub for the real service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini implements Generator using Gemini text generation.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Generate sends the prompt and returns the reply text with any markdown
// fences stripped. The call carries an explicit deadline; the upstream
// service imposes none of its own.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := genai.Text(prompt)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call generation service: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from generation service")
	}
	return StripFences(text), nil
}
