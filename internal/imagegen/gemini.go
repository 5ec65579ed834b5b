// Package imagegen renders the two card illustrations (background
// scene and subject) through a Gemini image model. Each call is a
// single attempt with no fallback; a response without inline image
// data is a generation failure.
package imagegen

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/pkg/utils"
)

// Generator produces one image for one free-text prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator builds the generator. A missing API key yields a
// disabled generator that reports the misconfiguration per request.
func NewGeminiGenerator(ctx context.Context, cfg utils.AIConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return &GeminiGenerator{model: cfg.ImageModel}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: cfg.ImageModel}, nil
}

// Generate requests one illustration and returns its raw bytes.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	if g.client == nil {
		return nil, apperrors.NewServerMisconfigured("VITADEX_GEMINI_API_KEY not set")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, apperrors.NewImageGenerationFailed(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, apperrors.NewImageGenerationFailed(fmt.Errorf("no candidates in response"))
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, apperrors.NewImageGenerationFailed(fmt.Errorf("no inline image data in response"))
}

var _ Generator = (*GeminiGenerator)(nil)
