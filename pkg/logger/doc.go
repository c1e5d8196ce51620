// Package logger provides structured logging for the Acuity strategy and the
// applications that host it.
//
// It builds on log/slog and adds context-based attribute injection, a no-op
// logger used as the default when nothing is configured, and optional Sentry
// error reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.AttemptIDExtractor())
//
//	ctx := logger.WithAttemptID(context.Background(), "9b7c...")
//	log.InfoContext(ctx, "profile fetched", slog.String("provider", "acuity"))
//	// {"level":"INFO","msg":"profile fetched","provider":"acuity","auth_attempt_id":"9b7c..."}
//
// Levels and output format can come from configuration:
//
//	log := logger.NewWithConfig(os.Stderr, logger.Config{Level: "debug", Format: "text"})
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, logger.AttemptIDExtractor())
//	defer logger.FlushSentry(2 * time.Second)
//
// Errors create Sentry issues; warnings are stored as Sentry logs when MinLevel
// is warn. An empty DSN falls back to stdout-only logging, so the same code path
// works in development.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute for the current context, or false to
// skip it. LogHandlerDecorator wraps any slog.Handler with a set of extractors:
//
//	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(os.Stdout, nil), extractors...)
//	log := slog.New(h)
package logger
