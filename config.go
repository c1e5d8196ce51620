package acuity

// Default Acuity Scheduling endpoints.
const (
	DefaultAuthorizationURL = "https://acuityscheduling.com/oauth2/authorize"
	DefaultTokenURL         = "https://acuityscheduling.com/oauth2/token"
	DefaultProfileURL       = "https://acuityscheduling.com/api/v1/me"
)

// DefaultScopes returns the default scopes for Acuity OAuth.
func DefaultScopes() []string {
	return []string{"api-v1"}
}

// Config holds Acuity OAuth configuration.
// ClientID, ClientSecret and CallbackURL are required; empty endpoint URLs
// fall back to the Acuity defaults.
type Config struct {
	ClientID              string   `env:"ACUITY_OAUTH_CLIENT_ID,required"`
	ClientSecret          string   `env:"ACUITY_OAUTH_CLIENT_SECRET,required"`
	CallbackURL           string   `env:"ACUITY_OAUTH_CALLBACK_URL,required"`
	AuthorizationURL      string   `env:"ACUITY_OAUTH_AUTHORIZATION_URL" envDefault:""`
	TokenURL              string   `env:"ACUITY_OAUTH_TOKEN_URL" envDefault:""`
	ProfileURL            string   `env:"ACUITY_OAUTH_PROFILE_URL" envDefault:""`
	Scopes                []string `env:"ACUITY_OAUTH_SCOPES" envSeparator:","`
	PassRequestToCallback bool     `env:"ACUITY_OAUTH_PASS_REQUEST_TO_CALLBACK" envDefault:"false"`
}

func (c Config) withDefaults() Config {
	if c.AuthorizationURL == "" {
		c.AuthorizationURL = DefaultAuthorizationURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.ProfileURL == "" {
		c.ProfileURL = DefaultProfileURL
	}
	if len(c.Scopes) == 0 {
		c.Scopes = DefaultScopes()
	} else {
		c.Scopes = append([]string(nil), c.Scopes...)
	}
	return c
}
