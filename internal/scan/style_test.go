package scan

import "testing"

func TestStyleForContinentKnown(t *testing.T) {
	for continent := range continentStyles {
		if StyleForContinent(continent) == "" {
			t.Errorf("empty style for %q", continent)
		}
	}
}

func TestStyleForContinentTotal(t *testing.T) {
	// Anything the model invents still resolves to a usable style.
	for _, in := range []string{"", "Atlantis", "europe", "EUROPE", "Middle Earth"} {
		if got := StyleForContinent(in); got != fallbackStyle {
			t.Errorf("StyleForContinent(%q) = %q, want fallback", in, got)
		}
	}
}
