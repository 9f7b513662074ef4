package utils

import (
	"net/url"
	"regexp"
	"unicode"
)

// ValidateURL checks that a URL a user is about to submit is plausibly valid,
// so obviously broken submissions never reach the network. The backend
// remains the authority; this is a pre-dispatch courtesy check.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyURL
	}

	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return ErrInvalidScheme
	}

	if parsedURL.Host == "" {
		return ErrEmptyHost
	}

	return nil
}

var (
	slugFormat = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$`)
	pureNumber = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateSlug validates a custom short code before it is submitted.
// Rules:
// - Length: minLength-maxLength characters
// - Characters: a-z, A-Z, 0-9, -, _
// - Must start and end with alphanumeric
// - Cannot be reserved words
// - Cannot be pure numbers
func ValidateSlug(slug string, minLength, maxLength int) error {
	if len(slug) < minLength {
		return ErrSlugTooShort
	}
	if len(slug) > maxLength {
		return ErrSlugTooLong
	}

	firstChar := rune(slug[0])
	if !unicode.IsLetter(firstChar) && !unicode.IsDigit(firstChar) {
		return ErrSlugInvalidStart
	}

	lastChar := rune(slug[len(slug)-1])
	if !unicode.IsLetter(lastChar) && !unicode.IsDigit(lastChar) {
		return ErrSlugInvalidEnd
	}

	if !slugFormat.MatchString(slug) {
		return ErrSlugInvalidFormat
	}

	// Pure numbers could collide with ID-style routes on the backend.
	if pureNumber.MatchString(slug) {
		return ErrSlugPureNumber
	}

	if IsReservedSlug(slug) {
		return ErrSlugReserved
	}

	return nil
}
