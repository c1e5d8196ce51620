// Package acuity provides an OAuth2 authentication strategy for Acuity Scheduling.
//
// The strategy validates its configuration up front, delegates the
// authorization code flow to a generic OAuth2 client (see pkg/oauth) and
// normalizes the Acuity "current user" response into a Profile.
//
// # Usage
//
//	strategy, err := acuity.New(acuity.Config{
//		ClientID:     os.Getenv("ACUITY_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("ACUITY_OAUTH_CLIENT_SECRET"),
//		CallbackURL:  "https://example.com/auth/acuity/callback",
//	}, func(ctx context.Context, accessToken, refreshToken string, p *acuity.Profile) (any, any, error) {
//		user, err := users.FindOrCreate(ctx, p.ID, p.Emails[0].Value)
//		return user, nil, err
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Redirect the user to Acuity
//	http.Redirect(w, r, strategy.AuthCodeURL(state), http.StatusFound)
//
//	// In the callback handler
//	res, err := strategy.AuthenticateRequest(r)
//	if err != nil {
//		// handle error
//	}
//
// # Profile
//
// UserProfile issues one GET to the profile URL (default
// https://acuityscheduling.com/api/v1/me) with the access token in the
// Authorization header. The normalized profile always carries Provider "acuity"
// and exactly one Emails entry, even when Acuity omits the email field.
// Raw and JSON keep the original body for callers that need more fields.
//
// # Error Handling
//
// Construction errors wrap ErrConfig plus a field-specific sentinel
// (ErrMissingVerify, ErrMissingClientID, ErrMissingClientSecret,
// ErrMissingCallbackURL, ErrInvalidURL). Runtime errors are returned, never panicked:
//
//   - ErrProfileFetch: the profile request failed (network error or non-2xx)
//   - ErrProfileParse: Acuity returned a body that is not JSON
//   - ErrTokenExchange: the code could not be exchanged for a token
//   - ErrAuthorizationDenied, ErrMissingCode: the callback request was unusable
//   - ErrVerify, ErrUnauthorized: the verify callback failed or rejected the user
//
// Nothing is retried internally.
package acuity
