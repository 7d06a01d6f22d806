// Package logging defines the structured-logging interface used across the
// client and its log/slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request finished", "endpoint", "/get-user/", "status", 200)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// MaskToken shortens a session token for logging. Tokens are never logged in full.
func MaskToken(token string) string {
	const keep = 4
	if len(token) <= keep {
		return "****"
	}
	return token[:keep] + "****"
}
