package acuity

import "errors"

var (
	// ErrConfig is the common parent of all construction-time configuration errors.
	ErrConfig = errors.New("acuity: invalid configuration")

	// ErrMissingVerify is returned when New is called without a verify callback.
	ErrMissingVerify = errors.New("acuity: strategy requires a verify callback")

	// ErrMissingClientID is returned when the client ID is not provided.
	ErrMissingClientID = errors.New("acuity: strategy requires a clientID option")

	// ErrMissingClientSecret is returned when the client secret is not provided.
	ErrMissingClientSecret = errors.New("acuity: strategy requires a clientSecret option")

	// ErrMissingCallbackURL is returned when the callback URL is not provided.
	ErrMissingCallbackURL = errors.New("acuity: strategy requires a callbackURL option")

	// ErrInvalidURL is returned when a configured URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("acuity: invalid URL option")

	// ErrProfileFetch is returned when the profile request could not complete.
	ErrProfileFetch = errors.New("acuity: failed to fetch user profile")

	// ErrProfileParse is returned when the profile response is not valid JSON.
	ErrProfileParse = errors.New("acuity: failed to parse user profile")

	// ErrTokenExchange is returned when the authorization code could not be exchanged.
	ErrTokenExchange = errors.New("acuity: failed to obtain access token")

	// ErrAuthorizationDenied is returned when the callback carries an OAuth error,
	// e.g. the user declined access.
	ErrAuthorizationDenied = errors.New("acuity: authorization denied")

	// ErrMissingCode is returned when the callback has neither a code nor an error.
	ErrMissingCode = errors.New("acuity: missing authorization code")

	// ErrVerify wraps errors returned by the verify callback.
	ErrVerify = errors.New("acuity: verify callback failed")

	// ErrUnauthorized is returned when the verify callback accepts no user.
	ErrUnauthorized = errors.New("acuity: unauthorized")
)

func configError(err error) error {
	return errors.Join(ErrConfig, err)
}
