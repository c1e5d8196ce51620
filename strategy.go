package acuity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/acuity/pkg/logger"
	"github.com/dmitrymomot/acuity/pkg/oauth"
)

// ProviderName is the identifier of the Acuity strategy.
const ProviderName = "acuity"

// VerifyFunc maps the tokens and normalized profile of a successful OAuth flow
// to an application user. Returning a nil user with a nil error rejects the
// attempt, including a typed nil pointer such as (*User)(nil); info is passed
// through to the caller in both cases.
type VerifyFunc func(ctx context.Context, accessToken, refreshToken string, profile *Profile) (user, info any, err error)

// Strategy authenticates users against Acuity Scheduling using OAuth2.
// It is safe for concurrent use; configuration is immutable after New returns.
type Strategy struct {
	client oauth.Client
	verify VerifyFunc
	log    *slog.Logger
	cfg    Config
}

// New creates an Acuity strategy.
// Returns an error wrapping ErrConfig if verify is nil, a required field is
// empty, or a URL is not an absolute http(s) URL.
func New(cfg Config, verify VerifyFunc, opts ...Option) (*Strategy, error) {
	if verify == nil {
		return nil, configError(ErrMissingVerify)
	}
	if cfg.ClientID == "" {
		return nil, configError(ErrMissingClientID)
	}
	if cfg.ClientSecret == "" {
		return nil, configError(ErrMissingClientSecret)
	}
	if cfg.CallbackURL == "" {
		return nil, configError(ErrMissingCallbackURL)
	}

	cfg = cfg.withDefaults()

	for _, f := range []struct{ name, value string }{
		{"callbackURL", cfg.CallbackURL},
		{"authorizationURL", cfg.AuthorizationURL},
		{"tokenURL", cfg.TokenURL},
		{"profileURL", cfg.ProfileURL},
	} {
		if err := validateURL(f.value); err != nil {
			return nil, configError(errors.Join(ErrInvalidURL, fmt.Errorf("%s: %w", f.name, err)))
		}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = logger.NewNope()
	}

	client := o.client
	if client == nil {
		clientOpts := []oauth.Option{oauth.WithAuthorizationHeaderForGET(true)}
		if o.httpClient != nil {
			clientOpts = append(clientOpts, oauth.WithHTTPClient(o.httpClient))
		}

		c, err := oauth.NewClient(oauth.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			AuthURL:      cfg.AuthorizationURL,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}, clientOpts...)
		if err != nil {
			return nil, configError(err)
		}
		client = c
	}

	return &Strategy{
		client: client,
		verify: verify,
		log:    log.With(slog.String("strategy", ProviderName)),
		cfg:    cfg,
	}, nil
}

// Name returns the strategy identifier.
func (s *Strategy) Name() string {
	return ProviderName
}

// ClientID returns the configured client ID.
func (s *Strategy) ClientID() string { return s.cfg.ClientID }

// ClientSecret returns the configured client secret.
func (s *Strategy) ClientSecret() string { return s.cfg.ClientSecret }

// CallbackURL returns the configured callback URL.
func (s *Strategy) CallbackURL() string { return s.cfg.CallbackURL }

// AuthorizationURL returns the resolved authorization endpoint.
func (s *Strategy) AuthorizationURL() string { return s.cfg.AuthorizationURL }

// TokenURL returns the resolved token endpoint.
func (s *Strategy) TokenURL() string { return s.cfg.TokenURL }

// ProfileURL returns the resolved profile endpoint.
func (s *Strategy) ProfileURL() string { return s.cfg.ProfileURL }

// Scopes returns a copy of the resolved scopes.
func (s *Strategy) Scopes() []string { return append([]string(nil), s.cfg.Scopes...) }

// PassRequestToCallback reports whether the inbound request is exposed to the
// verify callback through RequestFromContext.
func (s *Strategy) PassRequestToCallback() bool { return s.cfg.PassRequestToCallback }

// AuthCodeURL generates the Acuity authorization URL for the given state.
func (s *Strategy) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return s.client.AuthCodeURL(state, opts...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("must be an absolute URL with a host")
	}
	return nil
}
