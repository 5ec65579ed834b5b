package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("VITADEX_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("VITADEX_JWT_ISSUER")
	if issuer == "" {
		issuer = "vitadex"
	}

	hours := 24
	if ttl := os.Getenv("VITADEX_JWT_TTL_HOURS"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil && n > 0 {
			hours = n
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: time.Duration(hours) * time.Hour,
	}
}

type AIConfig struct {
	APIKey       string
	ExtractModel string
	ImageModel   string
}

// LoadAIConfig reads the Gemini credential and model names. A missing
// key is not fatal at startup; the scan endpoint reports it per request.
func LoadAIConfig() AIConfig {
	model := os.Getenv("VITADEX_EXTRACT_MODEL")
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	imageModel := os.Getenv("VITADEX_IMAGE_MODEL")
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}

	return AIConfig{
		APIKey:       os.Getenv("VITADEX_GEMINI_API_KEY"),
		ExtractModel: model,
		ImageModel:   imageModel,
	}
}
