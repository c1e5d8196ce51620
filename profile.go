package acuity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// Email is a single address entry of a normalized profile.
type Email struct {
	Value string `json:"value"`
}

// Profile is the normalized Acuity user profile.
type Profile struct {
	JSON        map[string]any `json:"-"`
	Provider    string         `json:"provider"`
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Raw         string         `json:"-"`
	Emails      []Email        `json:"emails"`
}

// acuityUser represents the response from Acuity's /me endpoint.
// Only the fields the profile is built from are decoded.
type acuityUser struct {
	ID    json.RawMessage `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
}

// ParseProfile builds a normalized profile from the /me response body.
// Missing name and email degrade to empty strings; Emails always holds
// exactly one entry. Malformed JSON or a body that is not an object
// (including null) is an error.
func ParseProfile(body []byte) (*Profile, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Join(ErrProfileParse, err)
	}
	if raw == nil {
		return nil, errors.Join(ErrProfileParse, errors.New("profile body is not a JSON object"))
	}

	var user acuityUser
	if err := json.Unmarshal(body, &user); err != nil {
		// A non-string name/email is tolerated; keep whatever decoded.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, errors.Join(ErrProfileParse, err)
		}
	}

	return &Profile{
		Provider:    ProviderName,
		ID:          parseID(user.ID),
		DisplayName: user.Name,
		Emails:      []Email{{Value: user.Email}},
		Raw:         string(body),
		JSON:        raw,
	}, nil
}

// parseID returns the id as a string whether Acuity sent it as a JSON string
// or number. Anything else yields an empty id.
func parseID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// UserProfile fetches the authenticated user from the profile endpoint and
// normalizes it. Transport failures wrap ErrProfileFetch together with the
// delegate's *oauth.InternalError; malformed bodies wrap ErrProfileParse.
// Failed requests are not retried.
func (s *Strategy) UserProfile(ctx context.Context, accessToken string) (*Profile, error) {
	s.log.DebugContext(ctx, "fetching user profile", slog.String("url", s.cfg.ProfileURL))

	body, _, err := s.client.Get(ctx, s.cfg.ProfileURL, accessToken)
	if err != nil {
		s.log.DebugContext(ctx, "user profile request failed", slog.String("error", err.Error()))
		return nil, errors.Join(ErrProfileFetch, err)
	}

	s.log.DebugContext(ctx, "user profile fetched", slog.String("body", string(body)))

	profile, err := ParseProfile(body)
	if err != nil {
		s.log.DebugContext(ctx, "user profile parse failed", slog.String("error", err.Error()))
		return nil, err
	}

	return profile, nil
}
