package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	apiPrefix = "/api/v1"

	dialTimeout           = 10 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
	responseHeaderTimeout = 15 * time.Second
)

// Client wraps outbound calls to the shortener backend. It attaches the
// bearer credential, tags every request with an X-Request-Id, and normalizes
// transport and application errors into *Error.
//
// The client carries the credential but does not own its lifecycle; the
// session manager sets and clears it through SetToken/ClearToken.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a gateway client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

// SetToken installs the bearer credential used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently installed bearer credential, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the backend's structured error response shape.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// do executes one API call and decodes the JSON response into out (when out
// is non-nil). Every failure is returned as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + apiPrefix + path
	requestID := uuid.New().String()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindFetch, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &Error{Kind: KindFetch, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Str("request_id", requestID).Msg("API transport failure")
		return &Error{Kind: KindFetch, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindFetch, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeFailure(resp.StatusCode, data, path, requestID)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindFetch, Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return nil
}

// normalizeFailure maps a non-2xx response onto the error taxonomy: 401/403
// become auth errors, other 4xx with a structured body become validation
// errors carrying the backend message verbatim, everything else is a fetch
// error.
func (c *Client) normalizeFailure(status int, data []byte, path, requestID string) *Error {
	var body errorBody
	message := ""
	if json.Unmarshal(data, &body) == nil {
		message = body.Error
		if message == "" {
			message = body.Message
		}
	}

	kind := KindFetch
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status >= 400 && status < 500 && message != "":
		kind = KindValidation
	}

	log.Debug().
		Int("status", status).
		Str("kind", kind.String()).
		Str("path", path).
		Str("request_id", requestID).
		Msg("API request rejected")

	return &Error{Kind: kind, Status: status, Message: message}
}
