package model

import "time"

// ShortLink represents a single shortened URL owned by the backend. The
// client only appends and reads; it never mutates an existing entry.
type ShortLink struct {
	ID          uint      `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	ShortURL    string    `json:"short_url"`
	ExpiryHours uint      `json:"expiry"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ShortenRequest represents a URL shortening submission
type ShortenRequest struct {
	URL         string `json:"url"`
	CustomShort string `json:"custom_short"`
	ExpiryHours uint   `json:"expiry"`
}

// ShortenResponse represents a successful shortening response. The backend
// echoes both the canonical link fields and the legacy url/custom_short pair.
type ShortenResponse struct {
	ID          uint      `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	ShortURL    string    `json:"short_url"`
	URL         string    `json:"url"`
	CustomShort string    `json:"custom_short"`
	ExpiryHours uint      `json:"expiry"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Link converts a shorten response into the ShortLink held in the collection.
// Older backend builds omit short_code/original_url and only send the legacy
// custom_short/url pair, so those are the fallback.
func (r ShortenResponse) Link() ShortLink {
	code := r.ShortCode
	if code == "" {
		code = r.CustomShort
	}
	original := r.OriginalURL
	if original == "" {
		original = r.URL
	}
	return ShortLink{
		ID:          r.ID,
		ShortCode:   code,
		OriginalURL: original,
		ShortURL:    r.ShortURL,
		ExpiryHours: r.ExpiryHours,
		CreatedAt:   r.CreatedAt,
		ExpiresAt:   r.ExpiresAt,
	}
}

// URLListResponse is the response of GET /urls
type URLListResponse struct {
	URLs []ShortLink `json:"urls"`
}
