package scan

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Renard roux", "renard-roux"},
		{"renard-roux", "renard-roux"},
		{"  Grand   Héron!! ", "grand-héron"},
		{"Blue-Footed Booby", "blue-footed-booby"},
		{"---", ""},
		{"", ""},
		{"Agave 'Americana'", "agave-americana"},
		{"No.7 Beetle", "no-7-beetle"},
	}

	for _, tc := range cases {
		got := Slugify(tc.in)
		if got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Renard roux", "GRAND héron", "a!!b??c", "  x  ", "7%-off",
	}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSlugifyNoEdgeSeparators(t *testing.T) {
	inputs := []string{"!abc!", "--x--", " spaced out ", "...", "é!"}
	for _, in := range inputs {
		got := Slugify(in)
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Errorf("Slugify(%q) = %q has a leading or trailing separator", in, got)
		}
	}
}

func TestCardID(t *testing.T) {
	got := CardID("Renard roux", "Europe")
	if got != "renard-roux_Europe" {
		t.Errorf("CardID = %q, want %q", got, "renard-roux_Europe")
	}

	// Same species, same continent, different capture: same key.
	if CardID("Renard Roux", "Europe") != got {
		t.Error("CardID should not depend on name casing")
	}
}
