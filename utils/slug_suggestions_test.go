package utils

import (
	"strings"
	"testing"
)

func TestGenerateSlugSuggestions(t *testing.T) {
	suggestions := GenerateSlugSuggestions("My-Link", 3, nil)

	if len(suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3: %v", len(suggestions), suggestions)
	}
	for _, s := range suggestions {
		if !strings.HasPrefix(s, "my-link-") {
			t.Errorf("suggestion %q does not derive from the lowercased base", s)
		}
	}
}

func TestGenerateSlugSuggestions_SkipsUnavailable(t *testing.T) {
	taken := map[string]bool{"my-link-2": true, "my-link-3": true}
	available := func(slug string) bool { return !taken[slug] }

	suggestions := GenerateSlugSuggestions("my-link", 3, available)

	if len(suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3: %v", len(suggestions), suggestions)
	}
	for _, s := range suggestions {
		if taken[s] {
			t.Errorf("suggestion %q is marked as taken", s)
		}
	}
}

func TestGenerateSlugSuggestions_NoDuplicates(t *testing.T) {
	suggestions := GenerateSlugSuggestions("promo", 5, nil)

	seen := map[string]bool{}
	for _, s := range suggestions {
		if seen[s] {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = true
	}
}

func TestGenerateSlugSuggestions_DefaultsMax(t *testing.T) {
	if got := len(GenerateSlugSuggestions("promo", 0, nil)); got != 3 {
		t.Errorf("got %d suggestions with zero max, want default 3", got)
	}
}
