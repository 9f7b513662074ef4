package utils

import "strings"

// ReservedSlugs lists codes that cannot be used as custom short codes: the
// backend mounts these as routes, so a link using one would be unreachable.
var ReservedSlugs = []string{
	// API surface
	"api",
	"v1",
	"health",
	"register",
	"login",
	"logout",
	"shorten",
	"urls",
	"stats",
	"test",
	"debug",
	"notifications",

	// Frontend assets served next to the redirect route
	"static",
	"assets",
	"index",
	"favicon",

	// Common words to avoid confusion
	"admin",
	"dashboard",
	"qr",
	"short",
	"link",
	"url",
	"user",
	"account",
	"help",
	"about",
	"home",
	"example",
	"demo",
}

// IsReservedSlug checks if a slug is in the reserved list
// Case-insensitive comparison
func IsReservedSlug(slug string) bool {
	slugLower := strings.ToLower(slug)
	for _, reserved := range ReservedSlugs {
		if slugLower == reserved {
			return true
		}
	}
	return false
}
