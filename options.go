package acuity

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/acuity/pkg/oauth"
)

// Option configures a Strategy.
type Option func(*options)

type options struct {
	client     oauth.Client
	httpClient *http.Client
	logger     *slog.Logger
}

// WithClient replaces the default golang.org/x/oauth2 delegate.
// The client is used as is; the strategy does not reconfigure it.
func WithClient(client oauth.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for the default delegate.
// This is useful for testing with httptest servers or injecting
// custom transports. Ignored when WithClient is used.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for debug output. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}
