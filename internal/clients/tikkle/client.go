package tikkle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/tikkle/internal/common/uuid"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	defaultTimeout           = 10 * time.Second
	defaultSessionCookieName = "JSESSIONID"

	headerRequestID = "X-Request-ID"
)

// Config holds configuration for the API client
type Config struct {
	// BaseURL is the API origin, e.g. https://tikkle.example.com
	BaseURL string

	// SessionCookie is the server session value sent with every request
	SessionCookie string

	// SessionCookieName defaults to JSESSIONID
	SessionCookieName string

	// Timeout bounds a single HTTP attempt
	Timeout time.Duration

	// MaxRetries is how many times an idempotent request is retried
	MaxRetries int

	// HTTPClient overrides the default client; its jar is replaced when SessionCookie is set
	HTTPClient *http.Client

	// Logger receives retry and failure logs
	Logger *zap.Logger

	// UUIDGenerator produces request ids
	UUIDGenerator uuid.UUID
}

// client implements the Client interface over HTTP
type client struct {
	baseURL    *url.URL
	http       *http.Client
	maxRetries int
	logger     *zap.Logger
	uuid       uuid.UUID
	validate   *validator.Validate
}

// New creates a new API client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BaseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	if cfg.SessionCookie != "" {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}

		name := cfg.SessionCookieName
		if name == "" {
			name = defaultSessionCookieName
		}
		jar.SetCookies(baseURL, []*http.Cookie{{Name: name, Value: cfg.SessionCookie, Path: "/"}})
		httpClient.Jar = jar
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	idGen := cfg.UUIDGenerator
	if idGen == nil {
		idGen = uuid.New()
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &client{
		baseURL:    baseURL,
		http:       httpClient,
		maxRetries: maxRetries,
		logger:     logger.Named("tikkle_client"),
		uuid:       idGen,
		validate:   validator.New(),
	}, nil
}

// retryableError marks a failure worth another attempt
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// do sends a JSON request and decodes a JSON response into out.
// GETs are retried on transport errors and 5xx responses.
func (c *client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	requestID := c.uuid.NewUUID()
	logger := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	operation := func() error {
		err := c.send(ctx, method, path, requestID, payload, out)
		if err == nil {
			return nil
		}

		var retry *retryableError
		if method == http.MethodGet && errors.As(err, &retry) {
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx),
		func(err error, d time.Duration) {
			logger.Warn("request attempt failed", zap.Error(err), zap.Duration("backoff", d))
		},
	)
	if err != nil {
		var retry *retryableError
		if errors.As(err, &retry) {
			err = retry.err
		}
		logger.Debug("request failed", zap.Error(err))
		return err
	}

	return nil
}

func (c *client) send(ctx context.Context, method, path, requestID string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &retryableError{err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resp)
		if resp.StatusCode >= 500 {
			return &retryableError{err: apiErr}
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &retryableError{err: fmt.Errorf("failed to read response: %w", err)}
	}

	// Some endpoints answer text/plain
	if !isJSON(resp) {
		if s, ok := out.(*string); ok {
			*s = string(data)
			return nil
		}
		return fmt.Errorf("%w: expected JSON, got %q", ErrInvalidPayload, resp.Header.Get("Content-Type"))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return nil
}

// parseError builds an APIError from the body, preferring message, then
// error, then errors[0].msg, then the status text.
func parseError(resp *http.Response) *APIError {
	data, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	if !isJSON(resp) {
		text := strings.TrimSpace(string(data))
		apiErr.Data = text
		if text != "" {
			apiErr.Message = text
		}
		if apiErr.Message == "" {
			apiErr.Message = "Request failed"
		}
		return apiErr
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		apiErr.Data = string(data)
		return apiErr
	}
	apiErr.Data = body

	if m, ok := body.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok {
			apiErr.Message = msg
		} else if msg, ok := m["error"].(string); ok {
			apiErr.Message = msg
		} else if list, ok := m["errors"].([]any); ok && len(list) > 0 {
			if first, ok := list[0].(map[string]any); ok {
				if msg, ok := first["msg"].(string); ok {
					apiErr.Message = msg
				}
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = "Request failed"
	}
	return apiErr
}

func isJSON(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "application/json")
}

func (c *client) validateInput(input any) error {
	if err := c.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
