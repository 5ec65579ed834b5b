// Package prompts holds the static prompt bodies sent to the vision
// and image models. Templates use {placeholder} tokens substituted by
// Render; the bodies themselves are embedded so the binary is
// self-contained.
package prompts

import (
	_ "embed"
	"strings"
)

//go:embed extract_system.md
var ExtractSystem string

//go:embed background.md
var backgroundTemplate string

//go:embed subject.md
var subjectTemplate string

// Render substitutes {key} tokens in a template. Unknown tokens are
// left untouched; substitution is total and never fails.
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.TrimSpace(strings.NewReplacer(pairs...).Replace(template))
}

// Background builds the background-scene prompt for a biome and a
// continent style label.
func Background(biome, continentStyle string) string {
	return Render(backgroundTemplate, map[string]string{
		"biome":           biome,
		"continent_style": continentStyle,
	})
}

// Subject builds the subject-illustration prompt.
func Subject(commonName, scientificName, continentStyle string) string {
	return Render(subjectTemplate, map[string]string{
		"common_name":     commonName,
		"scientific_name": scientificName,
		"continent_style": continentStyle,
	})
}
