package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shortlink/internal/client/models"
	"github.com/dmitrijs2005/shortlink/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client issues JSON requests against the shortlink REST API.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New constructs a Client bound to baseURL. The cookie jar keeps the
// session cookie across requests for the lifetime of the Client.
func New(baseURL string, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: defaultTimeout},
		log:     log,
	}, nil
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request and applies the classification rules. It returns
// either the decoded envelope or a *Error; no other error shape escapes.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (*models.Envelope[T], error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindUnknown, Message: "An unexpected error occurred", Code: err.Error()}
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "An unexpected error occurred", Code: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request did not complete", "method", method, "path", path, "error", err)
		return nil, &Error{
			Kind:    KindNetwork,
			Status:  0,
			Message: "Unable to connect to the API server. Please check if the server is running.",
			Code:    "Network error",
		}
	}
	defer resp.Body.Close()

	// A >= 500 body may be non-JSON (proxy error page); do not try to parse it.
	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Warn(ctx, "server error", "method", method, "path", path, "status", resp.StatusCode)
		return nil, &Error{
			Kind:    KindServerUnavailable,
			Status:  resp.StatusCode,
			Message: "API server is unavailable. Please try again later.",
			Code:    "Server error",
		}
	}

	var env models.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &Error{
			Kind:    KindUnknown,
			Status:  resp.StatusCode,
			Message: "An unexpected error occurred",
			Code:    err.Error(),
		}
	}

	// The envelope's success flag is authoritative, not the HTTP status.
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "An error occurred"
		}
		return nil, &Error{
			Kind:    KindApplication,
			Status:  resp.StatusCode,
			Message: msg,
			Code:    env.Error,
		}
	}

	return &env, nil
}
