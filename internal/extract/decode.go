package extract

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/pkg/models"
)

type wireExtraction struct {
	models.SpeciesMetadata
	HTMLCard string `json:"htmlCard"`
}

// decodeExtraction parses the structured model response. Any deviation
// from the schema — unparsable JSON, a missing field, an out-of-enum
// value, a wrong trait count — is terminal; nothing is coerced or
// repaired.
func decodeExtraction(raw string) (*models.Extraction, error) {
	var wire wireExtraction
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, apperrors.NewExtractionMalformed(fmt.Errorf("parse structured response: %w", err))
	}
	if err := wire.SpeciesMetadata.Validate(); err != nil {
		return nil, apperrors.NewExtractionMalformed(err)
	}
	return &models.Extraction{
		Metadata: wire.SpeciesMetadata,
		HTMLCard: wire.HTMLCard,
	}, nil
}
