package oauth

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// Client abstracts the generic OAuth2 authorization code flow.
// Provider-specific strategies hold a Client and add their own
// endpoints, profile fetching and normalization on top of it.
type Client interface {
	// AuthCodeURL generates the authorization URL the user is redirected to.
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)

	// Get issues an authenticated GET request and returns the response body.
	// Transport failures and non-2xx responses are returned as *InternalError.
	Get(ctx context.Context, url, accessToken string) ([]byte, *http.Response, error)
}

// Config holds the credentials and endpoints of an OAuth2 client.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string
}

// OAuth2Client implements Client on top of golang.org/x/oauth2.
type OAuth2Client struct {
	config       *oauth2.Config
	httpClient   *http.Client
	bearerForGET bool
}

// NewClient creates a new OAuth2 client.
// Returns an error if credentials or endpoints are missing.
func NewClient(cfg Config, opts ...Option) (*OAuth2Client, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}
	if cfg.AuthURL == "" {
		return nil, ErrMissingAuthURL
	}
	if cfg.TokenURL == "" {
		return nil, ErrMissingTokenURL
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &OAuth2Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		httpClient:   o.httpClient,
		bearerForGET: o.authorizationHeaderGET,
	}, nil
}

// AuthCodeURL generates the authorization URL.
func (c *OAuth2Client) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return c.config.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
func (c *OAuth2Client) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	return c.config.Exchange(c.contextWithHTTPClient(ctx), code, opts...)
}

// Get fetches rawURL with the access token attached either as a bearer
// Authorization header or as the access_token query parameter.
func (c *OAuth2Client) Get(ctx context.Context, rawURL, accessToken string) ([]byte, *http.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, fetchError("parse request url", err)
	}

	if !c.bearerForGET {
		q := u.Query()
		q.Set("access_token", accessToken)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, nil, fetchError("build request", err)
	}
	req.Header.Set("Accept", "application/json")

	hc := c.client()
	if c.bearerForGET {
		// The oauth2 transport sets the Authorization header on top of the
		// configured HTTP client's transport.
		hc = c.config.Client(c.contextWithHTTPClient(ctx), &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, nil, fetchError("send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, fetchError("read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, resp, statusError("unexpected response", resp.StatusCode, body)
	}

	return body, resp, nil
}

// ClientID returns the configured client ID.
func (c *OAuth2Client) ClientID() string {
	return c.config.ClientID
}

// Endpoint returns the configured authorization and token endpoints.
func (c *OAuth2Client) Endpoint() oauth2.Endpoint {
	return c.config.Endpoint
}

func (c *OAuth2Client) client() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return http.DefaultClient
}

func (c *OAuth2Client) contextWithHTTPClient(ctx context.Context) context.Context {
	if c.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	return ctx
}
