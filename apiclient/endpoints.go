package apiclient

import (
	"context"
	"net/http"

	"shortlink-dashboard/model"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	var resp model.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/register", req, &resp)
	return resp, err
}

// Login exchanges credentials for a bearer token. The token is returned to
// the caller, not installed; the session manager owns that decision.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	var resp model.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", req, &resp)
	return resp, err
}

// IntrospectToken validates the installed bearer token against the backend
// and returns the identity it belongs to.
func (c *Client) IntrospectToken(ctx context.Context) (model.IntrospectResponse, error) {
	var resp model.IntrospectResponse
	err := c.do(ctx, http.MethodGet, "/test", nil, &resp)
	return resp, err
}

// Shorten submits a long URL for shortening.
func (c *Client) Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	var resp model.ShortenResponse
	err := c.do(ctx, http.MethodPost, "/shorten", req, &resp)
	return resp, err
}

// ListURLs fetches the full set of the authenticated user's short links.
func (c *Client) ListURLs(ctx context.Context) (model.URLListResponse, error) {
	var resp model.URLListResponse
	err := c.do(ctx, http.MethodGet, "/urls", nil, &resp)
	return resp, err
}

// Stats fetches the click statistics for one short code.
func (c *Client) Stats(ctx context.Context, shortCode string) (model.StatsResponse, error) {
	var resp model.StatsResponse
	err := c.do(ctx, http.MethodGet, "/stats/"+shortCode, nil, &resp)
	return resp, err
}

// SendExpirationNotifications asks the backend to mail out expiry warnings
// for links that are about to lapse.
func (c *Client) SendExpirationNotifications(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/notifications/send", nil, nil)
}

// Health checks backend availability.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
