package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chinmay1088/walletgate/chains"
	"go.uber.org/zap"
)

// Client handles calls to the authorization service. It holds no per-call
// state and is safe for concurrent use.
type Client struct {
	httpClient Doer
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *zap.Logger
	families   map[chains.Chain]chains.Family
	strict     bool
}

// NewClient creates a new API client authenticated with apiKey
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		httpClient: newDefaultHTTPClient(),
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
		families:  chains.Registry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// Normalize and check the base URL once; every path is appended to it
	c.baseURL = strings.TrimRight(strings.TrimSpace(c.baseURL), "/")
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", c.baseURL)
	}

	return c, nil
}

// newDefaultHTTPClient returns the transport used when none is injected.
// Redirects are handed back to the caller as responses so a 3xx is
// classified like any other non-2xx status.
func newDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// BaseURL returns the service root all paths are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// headers builds the header set attached to every request
func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set(headerContentType, contentTypeJSON)
	h.Set(headerAccept, contentTypeJSON)
	h.Set(headerUserAgent, c.userAgent)
	h.Set(headerAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey)))
	return h
}

// postJSON sends a POST request with JSON payload and decodes the reply into out
func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

// getJSON sends a GET request and decodes the reply into out
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	// Encode payload
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Headers are rebuilt per call
	req.Header = c.headers()

	// Send request
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Read the whole body before classifying; error replies carry JSON too
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	// Classify and decode
	err = decodeResponse(resp.StatusCode, data, out)
	if errResp, ok := AsErrorResponse(err); ok {
		c.logger.Debug("request rejected",
			zap.String("path", path),
			zap.Int("status", errResp.StatusCode),
			zap.String("code", errResp.Code))
	}
	return err
}

// isSuccess is the single success test: any 2xx status
func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// decodeResponse parses body as the typed result on success and as an
// ErrorResponse otherwise
func decodeResponse(status int, body []byte, out interface{}) error {
	empty := len(bytes.TrimSpace(body)) == 0

	if !isSuccess(status) {
		// Parse error response
		errResp := &ErrorResponse{}
		if !empty {
			if err := json.Unmarshal(body, errResp); err != nil {
				return fmt.Errorf("failed to parse error response with status %d: %w", status, err)
			}
		}
		errResp.StatusCode = status
		if errResp.Code == "" && errResp.Message == "" {
			errResp.Message = http.StatusText(status)
		}
		return errResp
	}

	// Parse success response; an empty body leaves out at its zero value
	if out == nil || empty {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
