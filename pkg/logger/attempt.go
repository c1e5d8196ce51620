package logger

import (
	"context"
	"log/slog"
)

type attemptIDKey struct{}

// AttemptIDKey is the attribute key used for authentication attempt ids.
const AttemptIDKey = "auth_attempt_id"

// WithAttemptID stores an authentication attempt id in the context.
func WithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptIDKey{}, id)
}

// AttemptIDFromContext returns the authentication attempt id, if any.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(attemptIDKey{}).(string)
	return id, ok && id != ""
}

// AttemptIDExtractor adds the authentication attempt id to every log record
// emitted with a context that carries one.
func AttemptIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := AttemptIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String(AttemptIDKey, id), true
	}
}
