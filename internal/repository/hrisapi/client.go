package hrisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a thin wrapper around the upstream HRIS HTTP JSON API. The
// repository implementations in this package share one instance.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// APIError represents an upstream HRIS API error
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hris API error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// AsAPIError extracts the typed upstream error, if err carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// post sends a JSON body. Every mutation carries a fresh Idempotency-Key so
// an upstream retry cannot double-apply it.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("hris request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode >= 400 {
		return c.apiError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	return decodeBody(raw, out)
}

// errorBody is the upstream error envelope. Older deployments return a flat
// {"message": ...} instead, so both are accepted.
type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *Client) apiError(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status, Code: http.StatusText(status)}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != nil {
			apiErr.Code = body.Error.Code
			apiErr.Message = body.Error.Message
		} else if body.Message != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}

// decodeBody unwraps the optional {"data": ...} envelope some upstream
// deployments put around payloads, then unmarshals into out. Bare arrays and
// unwrapped objects pass through untouched.
func decodeBody(raw []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
