// Package extract turns one capture (photo or description, plus GPS
// coordinates) into structured species metadata via a vision-capable
// Gemini model. The model does all of the thinking: continent inference
// from coordinates, naming, rarity grading. Locally we only build the
// request and validate the structured response.
package extract

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/internal/prompts"
	"github.com/AllanGabay/vitadex/pkg/models"
	"github.com/AllanGabay/vitadex/pkg/utils"
)

type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor builds the extractor. With no API key configured
// it returns a disabled extractor whose Extract reports the missing
// credential per request rather than failing at startup.
func NewGeminiExtractor(ctx context.Context, cfg utils.AIConfig) (*GeminiExtractor, error) {
	if cfg.APIKey == "" {
		return &GeminiExtractor{model: cfg.ExtractModel}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiExtractor{client: client, model: cfg.ExtractModel}, nil
}

// Extract sends the capture and coordinates to the model, constrained
// to a single structured response, and returns the validated metadata.
// It performs exactly one attempt and persists nothing.
func (e *GeminiExtractor) Extract(ctx context.Context, in models.ScanInput, lat, lng float64) (*models.Extraction, error) {
	if e.client == nil {
		return nil, apperrors.NewServerMisconfigured("VITADEX_GEMINI_API_KEY not set")
	}

	parts := []*genai.Part{}
	switch v := in.(type) {
	case models.ImageInput:
		mime := v.MIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, genai.NewPartFromBytes(v.Data, mime))
	case models.TextInput:
		parts = append(parts, genai.NewPartFromText("Sighting description: "+v.Description))
	default:
		return nil, apperrors.NewMissingParameters("scan input must be an image or a description")
	}
	parts = append(parts, genai.NewPartFromText(
		fmt.Sprintf("Sighting coordinates: latitude %.5f, longitude %.5f", lat, lng)))

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompts.ExtractSystem, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    extractionSchema,
			Temperature:       genai.Ptr[float32](0.1),
		})
	if err != nil {
		return nil, fmt.Errorf("extraction request: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, apperrors.NewExtractionEmpty()
	}
	return decodeExtraction(text)
}
