package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateSlugSuggestions generates alternative custom codes when the
// requested one was rejected as taken. It tries multiple strategies:
// 1. Numeric suffixes: my-link-2, my-link-3, my-link-4
// 2. Random suffixes: my-link-x7, my-link-x9
// 3. Fallback: timestamp-based suffix
// available reports whether a candidate is usable; pass nil to accept every
// candidate (the backend is the final authority anyway).
func GenerateSlugSuggestions(baseSlug string, maxSuggestions int, available func(slug string) bool) []string {
	if maxSuggestions <= 0 {
		maxSuggestions = 3
	}
	if available == nil {
		available = func(string) bool { return true }
	}

	suggestions := make([]string, 0, maxSuggestions)
	slugLower := strings.ToLower(baseSlug)

	for i := 2; i <= maxSuggestions+5 && len(suggestions) < maxSuggestions; i++ {
		candidate := fmt.Sprintf("%s-%d", slugLower, i)
		if available(candidate) {
			suggestions = append(suggestions, candidate)
		}
	}

	for attempt := 0; attempt < 10 && len(suggestions) < maxSuggestions; attempt++ {
		randomSuffix := rng.Intn(90) + 10
		candidate := fmt.Sprintf("%s-x%d", slugLower, randomSuffix)
		if available(candidate) && !contains(suggestions, candidate) {
			suggestions = append(suggestions, candidate)
		}
	}

	if len(suggestions) < maxSuggestions {
		timestamp := time.Now().Unix() % 10000
		candidate := fmt.Sprintf("%s-%d", slugLower, timestamp)
		if available(candidate) && !contains(suggestions, candidate) {
			suggestions = append(suggestions, candidate)
		}
	}

	return suggestions
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
