package acuity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/acuity/pkg/logger"
)

// Result is the outcome of an authentication attempt.
type Result struct {
	User    any
	Info    any
	Profile *Profile
	Token   *oauth2.Token
}

type requestKey struct{}

// WithRequest stores the inbound callback request in the context.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

// RequestFromContext returns the inbound callback request. It is only set for
// verify callbacks when PassRequestToCallback is enabled.
func RequestFromContext(ctx context.Context) (*http.Request, bool) {
	r, ok := ctx.Value(requestKey{}).(*http.Request)
	return r, ok && r != nil
}

// AuthenticateRequest completes the OAuth flow from an Acuity callback request.
// An error query parameter yields ErrAuthorizationDenied; a request without a
// code yields ErrMissingCode. State validation is the caller's job.
func (s *Strategy) AuthenticateRequest(r *http.Request) (*Result, error) {
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		if desc := q.Get("error_description"); desc != "" {
			return nil, errors.Join(ErrAuthorizationDenied, fmt.Errorf("%s: %s", e, desc))
		}
		return nil, errors.Join(ErrAuthorizationDenied, errors.New(e))
	}

	code := q.Get("code")
	if code == "" {
		return nil, ErrMissingCode
	}

	ctx := r.Context()
	if s.cfg.PassRequestToCallback {
		ctx = WithRequest(ctx, r)
	}

	return s.Authenticate(ctx, code)
}

// Authenticate exchanges the authorization code, fetches the user profile and
// hands both to the verify callback.
func (s *Strategy) Authenticate(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*Result, error) {
	if _, ok := logger.AttemptIDFromContext(ctx); !ok {
		ctx = logger.WithAttemptID(ctx, uuid.NewString())
	}

	token, err := s.client.Exchange(ctx, code, opts...)
	if err != nil {
		s.log.WarnContext(ctx, "token exchange failed", slog.String("error", err.Error()))
		return nil, errors.Join(ErrTokenExchange, err)
	}

	profile, err := s.UserProfile(ctx, token.AccessToken)
	if err != nil {
		s.log.WarnContext(ctx, "user profile unavailable", slog.String("error", err.Error()))
		return nil, err
	}

	user, info, err := s.verify(ctx, token.AccessToken, token.RefreshToken, profile)
	if err != nil {
		return nil, errors.Join(ErrVerify, err)
	}

	res := &Result{User: user, Info: info, Profile: profile, Token: token}
	if isNilUser(user) {
		s.log.InfoContext(ctx, "user rejected by verify callback", slog.String("profile_id", profile.ID))
		return res, ErrUnauthorized
	}

	s.log.DebugContext(ctx, "user authenticated", slog.String("profile_id", profile.ID))
	return res, nil
}

// isNilUser reports whether verify rejected the user, either with an untyped
// nil or with a typed nil such as (*User)(nil).
func isNilUser(user any) bool {
	if user == nil {
		return true
	}
	v := reflect.ValueOf(user)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
