// Package oauth provides a generic OAuth2 authorization code client.
//
// The package wraps golang.org/x/oauth2 behind the Client interface so that
// provider-specific strategies can compose it instead of re-implementing the
// protocol. A Client builds authorization URLs, exchanges codes for tokens and
// performs authenticated GET requests against provider APIs.
//
// # Usage
//
//	client, err := oauth.NewClient(oauth.Config{
//		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/callback",
//		AuthURL:      "https://provider.example/oauth2/authorize",
//		TokenURL:     "https://provider.example/oauth2/token",
//	}, oauth.WithAuthorizationHeaderForGET(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	url := client.AuthCodeURL("random-state-string")
//
//	token, err := client.Exchange(ctx, code)
//	if err != nil {
//		// handle error
//	}
//
//	body, _, err := client.Get(ctx, "https://provider.example/api/me", token.AccessToken)
//
// # Token placement
//
// By default Get sends the access token as the access_token query parameter.
// WithAuthorizationHeaderForGET(true) switches to an "Authorization: Bearer"
// header, which most providers expect.
//
// # Error Handling
//
// Get reports failures as *InternalError. It matches one of two sentinels:
//
//   - ErrFetchFailed: the request could not be sent or the body could not be read
//   - ErrRequestFailed: the provider answered with a non-2xx status
//
// The underlying cause stays reachable through errors.Is and errors.As:
//
//	var ierr *oauth.InternalError
//	if errors.As(err, &ierr) && ierr.StatusCode == http.StatusUnauthorized {
//		// token revoked
//	}
//
// # Testing
//
// Use WithHTTPClient to inject a test server transport:
//
//	ts := httptest.NewServer(handler)
//	defer ts.Close()
//
//	client, err := oauth.NewClient(cfg, oauth.WithHTTPClient(ts.Client()))
package oauth
