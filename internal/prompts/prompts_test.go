package prompts

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	got := Render("A {biome} scene, {style}.", map[string]string{
		"biome": "wetland",
		"style": "muted heraldic tones",
	})
	want := "A wetland scene, muted heraldic tones."
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	got := Render("A {biome} scene with {mystery}.", map[string]string{"biome": "desert"})
	if !strings.Contains(got, "{mystery}") {
		t.Errorf("unknown token rewritten: %q", got)
	}
}

func TestBackgroundFillsAllTokens(t *testing.T) {
	got := Background("forest", "illuminated manuscript style")
	if strings.ContainsAny(got, "{}") {
		t.Errorf("unfilled token in background prompt: %q", got)
	}
	for _, want := range []string{"forest", "illuminated manuscript style"} {
		if !strings.Contains(got, want) {
			t.Errorf("background prompt missing %q: %q", want, got)
		}
	}
}

func TestSubjectFillsAllTokens(t *testing.T) {
	got := Subject("Renard roux", "Vulpes vulpes", "muted heraldic tones")
	if strings.ContainsAny(got, "{}") {
		t.Errorf("unfilled token in subject prompt: %q", got)
	}
	for _, want := range []string{"Renard roux", "Vulpes vulpes", "muted heraldic tones"} {
		if !strings.Contains(got, want) {
			t.Errorf("subject prompt missing %q: %q", want, got)
		}
	}
}
