package extract

import (
	"google.golang.org/genai"

	"github.com/AllanGabay/vitadex/pkg/models"
)

// extractionSchema constrains the vision model to one structured
// response shaped exactly like the card metadata. Enum fields reuse the
// closed sets from pkg/models so schema and validation cannot drift.
var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"commonName":     {Type: genai.TypeString},
		"scientificName": {Type: genai.TypeString},
		"category":       {Type: genai.TypeString, Enum: enumStrings(models.AllCategories)},
		"biome":          {Type: genai.TypeString, Enum: enumStrings(models.AllBiomes)},
		"continent":      {Type: genai.TypeString},
		"traits": {
			Type:     genai.TypeArray,
			Items:    &genai.Schema{Type: genai.TypeString},
			MinItems: genai.Ptr[int64](models.TraitCount),
			MaxItems: genai.Ptr[int64](models.TraitCount),
		},
		"averageSize":             {Type: genai.TypeString},
		"lifeExpectancy":          {Type: genai.TypeString},
		"professionalDescription": {Type: genai.TypeString},
		"rarity":                  {Type: genai.TypeString, Enum: enumStrings(models.AllRarities)},
		"htmlCard":                {Type: genai.TypeString},
	},
	Required: []string{
		"commonName", "scientificName", "category", "biome", "continent",
		"traits", "averageSize", "lifeExpectancy", "professionalDescription",
		"rarity", "htmlCard",
	},
}

func enumStrings[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
