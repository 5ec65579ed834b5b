package scan

import (
	"strings"
	"unicode"
)

// Slugify lower-cases the name and collapses every run of
// non-alphanumeric characters into a single "-", trimming leading and
// trailing separators. It is idempotent: slugifying a slug returns the
// slug unchanged.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// CardID derives the deduplication key for a sighting. Two scans of
// the same species on the same continent map to the same id regardless
// of the photo.
func CardID(commonName, continent string) string {
	return Slugify(commonName) + "_" + continent
}
