package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var _ API = (*Client)(nil)

// Client calls the auth API over HTTP. Each call is a single round trip: no retry, no backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client (primarily for testing)
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the API rooted at baseURL (e.g. "http://localhost:5500").
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("[NewClient] base URL is required")
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Signup posts a new account to the API.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Response, error) {
	var res Response
	if err := c.post(ctx, RouteSignup, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var res LoginResponse
	if err := c.post(ctx, RouteLogin, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// post sends body as JSON and decodes the JSON reply into out.
// The reply is parsed before the status is checked so a failure can carry the server's message.
func (c *Client) post(ctx context.Context, route string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "[Client] encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "[Client] build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrRequestFailed, "POST %s: %v", route, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrRequestFailed, "POST %s: read body: %v", route, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok {
		var failure Response
		if err := json.Unmarshal(data, &failure); err != nil {
			return apperrors.Wrapf(apperrors.ErrInvalidResponse, "POST %s: status %d", route, resp.StatusCode)
		}
		log.Debug().Str("route", route).Int("status", resp.StatusCode).Msg("auth api request rejected")
		return &APIError{StatusCode: resp.StatusCode, Message: utils.Value(failure.Message)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidResponse, "POST %s: decode body: %v", route, err)
	}
	return nil
}
