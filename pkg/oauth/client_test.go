package oauth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/acuity/pkg/oauth"
)

var _ oauth.Client = (*oauth.OAuth2Client)(nil)

// countingTransport counts the requests that reach the wrapped transport.
type countingTransport struct {
	base  http.RoundTripper
	calls atomic.Int32
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return t.base.RoundTrip(r)
}

func testConfig(baseURL string) oauth.Config {
	return oauth.Config{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		RedirectURL:  "https://example.com/callback",
		AuthURL:      baseURL + "/oauth2/authorize",
		TokenURL:     baseURL + "/oauth2/token",
		Scopes:       []string{"api-v1"},
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		c, err := oauth.NewClient(testConfig("https://provider.example"))
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Equal(t, "test-id", c.ClientID())
		require.Equal(t, "https://provider.example/oauth2/token", c.Endpoint().TokenURL)
	})

	tests := []struct {
		name   string
		mutate func(*oauth.Config)
		want   error
	}{
		{"missing client ID", func(c *oauth.Config) { c.ClientID = "" }, oauth.ErrMissingClientID},
		{"missing client secret", func(c *oauth.Config) { c.ClientSecret = "" }, oauth.ErrMissingClientSecret},
		{"missing auth URL", func(c *oauth.Config) { c.AuthURL = "" }, oauth.ErrMissingAuthURL},
		{"missing token URL", func(c *oauth.Config) { c.TokenURL = "" }, oauth.ErrMissingTokenURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig("https://provider.example")
			tt.mutate(&cfg)
			c, err := oauth.NewClient(cfg)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, c)
		})
	}
}

func TestOAuth2Client_AuthCodeURL(t *testing.T) {
	t.Parallel()

	c, err := oauth.NewClient(testConfig("https://provider.example"))
	require.NoError(t, err)

	u, err := url.Parse(c.AuthCodeURL("test-state"))
	require.NoError(t, err)
	require.Equal(t, "provider.example", u.Host)
	require.Equal(t, "/oauth2/authorize", u.Path)

	q := u.Query()
	require.Equal(t, "test-state", q.Get("state"))
	require.Equal(t, "test-id", q.Get("client_id"))
	require.Equal(t, "https://example.com/callback", q.Get("redirect_uri"))
	require.Equal(t, "api-v1", q.Get("scope"))
	require.Equal(t, "code", q.Get("response_type"))
}

func TestOAuth2Client_Exchange(t *testing.T) {
	t.Parallel()

	t.Run("successful exchange", func(t *testing.T) {
		t.Parallel()

		var receivedCode string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseForm()
			receivedCode = r.Form.Get("code")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "test-access-token",
				"refresh_token": "test-refresh-token",
				"token_type":    "Bearer",
			})
		}))
		defer ts.Close()

		c, err := oauth.NewClient(testConfig(ts.URL), oauth.WithHTTPClient(ts.Client()))
		require.NoError(t, err)

		token, err := c.Exchange(context.Background(), "test-code")
		require.NoError(t, err)
		require.Equal(t, "test-code", receivedCode)
		require.Equal(t, "test-access-token", token.AccessToken)
		require.Equal(t, "test-refresh-token", token.RefreshToken)
	})

	t.Run("invalid code", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_grant",
				"error_description": "The authorization code is invalid or expired.",
			})
		}))
		defer ts.Close()

		c, err := oauth.NewClient(testConfig(ts.URL), oauth.WithHTTPClient(ts.Client()))
		require.NoError(t, err)

		token, err := c.Exchange(context.Background(), "bad-code")
		require.Error(t, err)
		require.Nil(t, token)
	})
}

func TestOAuth2Client_Get(t *testing.T) {
	t.Parallel()

	t.Run("bearer header", func(t *testing.T) {
		t.Parallel()

		var authHeader, queryToken string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			queryToken = r.URL.Query().Get("access_token")
			_, _ = w.Write([]byte(`{"id":1}`))
		}))
		defer ts.Close()

		c, err := oauth.NewClient(testConfig(ts.URL),
			oauth.WithHTTPClient(ts.Client()),
			oauth.WithAuthorizationHeaderForGET(true),
		)
		require.NoError(t, err)

		body, resp, err := c.Get(context.Background(), ts.URL+"/api/v1/me", "test-token")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"id":1}`, string(body))
		require.Equal(t, "Bearer test-token", authHeader)
		require.Empty(t, queryToken)
	})

	t.Run("bearer uses configured transport", func(t *testing.T) {
		t.Parallel()

		var authHeader string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		rt := &countingTransport{base: ts.Client().Transport}
		c, err := oauth.NewClient(testConfig(ts.URL),
			oauth.WithHTTPClient(&http.Client{Transport: rt}),
			oauth.WithAuthorizationHeaderForGET(true),
		)
		require.NoError(t, err)

		_, _, err = c.Get(context.Background(), ts.URL+"/api/v1/me", "test-token")
		require.NoError(t, err)
		require.Equal(t, int32(1), rt.calls.Load())
		require.Equal(t, "Bearer test-token", authHeader)
	})

	t.Run("query parameter by default", func(t *testing.T) {
		t.Parallel()

		var authHeader, queryToken, other string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			queryToken = r.URL.Query().Get("access_token")
			other = r.URL.Query().Get("fields")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		c, err := oauth.NewClient(testConfig(ts.URL), oauth.WithHTTPClient(ts.Client()))
		require.NoError(t, err)

		_, _, err = c.Get(context.Background(), ts.URL+"/api/v1/me?fields=id", "test-token")
		require.NoError(t, err)
		require.Empty(t, authHeader)
		require.Equal(t, "test-token", queryToken)
		require.Equal(t, "id", other)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
		}))
		defer ts.Close()

		c, err := oauth.NewClient(testConfig(ts.URL),
			oauth.WithHTTPClient(ts.Client()),
			oauth.WithAuthorizationHeaderForGET(true),
		)
		require.NoError(t, err)

		_, _, err = c.Get(context.Background(), ts.URL+"/api/v1/me", "expired")
		require.ErrorIs(t, err, oauth.ErrRequestFailed)
		require.NotErrorIs(t, err, oauth.ErrFetchFailed)

		var ierr *oauth.InternalError
		require.True(t, errors.As(err, &ierr))
		require.Equal(t, http.StatusUnauthorized, ierr.StatusCode)
		require.Contains(t, string(ierr.Body), "invalid_token")
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.NotFoundHandler())
		addr := ts.URL
		ts.Close()

		c, err := oauth.NewClient(testConfig(addr), oauth.WithAuthorizationHeaderForGET(true))
		require.NoError(t, err)

		body, resp, err := c.Get(context.Background(), addr+"/api/v1/me", "test-token")
		require.ErrorIs(t, err, oauth.ErrFetchFailed)
		require.ErrorIs(t, err, syscall.ECONNREFUSED)
		require.Nil(t, body)
		require.Nil(t, resp)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		c, err := oauth.NewClient(testConfig(ts.URL), oauth.WithHTTPClient(ts.Client()))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err = c.Get(ctx, ts.URL, "test-token")
		require.ErrorIs(t, err, oauth.ErrFetchFailed)
		require.ErrorIs(t, err, context.Canceled)
	})
}
