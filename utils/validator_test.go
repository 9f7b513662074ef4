package utils

import (
	"errors"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "valid http URL", url: "http://example.com"},
		{name: "valid https URL", url: "https://example.com/path?q=1"},
		{name: "empty URL", url: "", wantErr: ErrEmptyURL},
		{name: "missing scheme", url: "example.com", wantErr: ErrInvalidURL},
		{name: "unsupported scheme", url: "ftp://example.com", wantErr: ErrInvalidScheme},
		{name: "scheme only", url: "https://", wantErr: ErrEmptyHost},
		{name: "garbage", url: "ht tp://bad url", wantErr: ErrInvalidURL},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateURL(test.url)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("ValidateURL(%q) = %v, want %v", test.url, err, test.wantErr)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{name: "valid simple", slug: "my-link"},
		{name: "valid with digits", slug: "promo2024"},
		{name: "valid with underscore", slug: "my_link"},
		{name: "too short", slug: "ab", wantErr: ErrSlugTooShort},
		{name: "too long", slug: "this-slug-is-way-too-long-to-accept", wantErr: ErrSlugTooLong},
		{name: "leading hyphen", slug: "-link", wantErr: ErrSlugInvalidStart},
		{name: "trailing underscore", slug: "link_", wantErr: ErrSlugInvalidEnd},
		{name: "illegal character", slug: "my.link", wantErr: ErrSlugInvalidFormat},
		{name: "pure numbers", slug: "12345", wantErr: ErrSlugPureNumber},
		{name: "reserved word", slug: "stats", wantErr: ErrSlugReserved},
		{name: "reserved word mixed case", slug: "Login", wantErr: ErrSlugReserved},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateSlug(test.slug, 3, 20)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("ValidateSlug(%q) = %v, want %v", test.slug, err, test.wantErr)
			}
		})
	}
}
