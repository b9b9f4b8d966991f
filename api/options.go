package api

import (
	"net/http"

	"github.com/chinmay1088/walletgate/chains"
	"go.uber.org/zap"
)

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client at construction
type Option func(*Client)

// WithBaseURL points the client at another deployment of the service
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the default transport
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the client identification header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithChain registers a chain slug under a family, so ownership checks apply
// that family's rules to it
func WithChain(chain chains.Chain, family chains.Family) Option {
	return func(c *Client) {
		c.families[chain.Normalize()] = family
	}
}

// WithStrictAddresses enables local format checks on addresses and token ids
// for chains of a known family
func WithStrictAddresses() Option {
	return func(c *Client) {
		c.strict = true
	}
}
