package oauth

import "net/http"

// Option configures an OAuth2 client.
type Option func(*options)

type options struct {
	httpClient             *http.Client
	authorizationHeaderGET bool
}

// WithHTTPClient sets a custom HTTP client for token exchange and authenticated GETs.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, retries).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithAuthorizationHeaderForGET controls where Get places the access token.
// When enabled the token is sent as "Authorization: Bearer <token>",
// otherwise as the access_token query parameter.
func WithAuthorizationHeaderForGET(enabled bool) Option {
	return func(o *options) {
		o.authorizationHeaderGET = enabled
	}
}
