// Package logger builds the log/slog loggers used by the ulid command.
//
// The library packages never log; errors go back to the caller. Only the
// command line tool reports through this package, writing to stderr so that
// generated IDs on stdout stay machine readable.
//
// # Basic Usage
//
//	log, err := logger.New(os.Stderr, logger.Config{Level: "debug", Format: "json"})
//	log.Debug("generated", slog.Int("count", 10))
//
// # Context Extractors
//
// A ContextExtractor pulls an attribute out of the context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// CommandExtractor is the one the CLI installs. It adds the name of the
// running subcommand stored by WithCommand:
//
//	ctx := logger.WithCommand(ctx, "time")
//	log.ErrorContext(ctx, "decode failed") // ... command=time
//
// # Sentry Integration
//
// NewWithSentry also forwards warnings and errors to Sentry when a DSN is set:
//
//	log, err := logger.NewWithSentry(os.Stderr, cfg, sentryCfg, logger.CommandExtractor)
//	defer logger.Flush(2 * time.Second)
//
// With an empty DSN, or if the SDK fails to start, it behaves like New.
package logger
