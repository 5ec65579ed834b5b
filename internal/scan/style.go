package scan

// continentStyles maps each continent the extraction model can name to
// the art-direction label substituted into the image prompts.
var continentStyles = map[string]string{
	"Africa":        "warm ochre palette, bold savanna linework",
	"Antarctica":    "glacial blue monochrome, aurora glow",
	"Asia":          "ink-wash painting style, gold leaf accents",
	"Europe":        "illuminated manuscript style, muted heraldic tones",
	"North America": "vintage national park poster style, layered silhouettes",
	"Oceania":       "coral reef palette, dot-painting texture",
	"South America": "lush emerald palette, Andean textile patterns",
}

// fallbackStyle covers anything the model invents outside the seven
// continents. The mapping is total: unrecognized input is never an error.
const fallbackStyle = "mythic cartography style, weathered parchment tones"

// StyleForContinent returns the style label for a continent name.
func StyleForContinent(continent string) string {
	if style, ok := continentStyles[continent]; ok {
		return style
	}
	return fallbackStyle
}
