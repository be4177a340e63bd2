// Package context provides request-scoped value plumbing: correlation id,
// authenticated principal and a request-scoped logger. All values live in an
// explicit context.Context passed through call chains; nothing is stored in
// ambient global state, so teardown is simply the end of the request context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vetclinic/internal/domain/entity"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyCorrelationID is the key for storing the correlation id in context.
	KeyCorrelationID ContextKey = "correlation_id"

	// KeyLogger is the key for storing the request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyPrincipal is the key for storing the authenticated principal in context.
	KeyPrincipal ContextKey = "principal"

	// HeaderXCorrelationID is the HTTP header name for the correlation id.
	HeaderXCorrelationID = "X-Correlation-ID"
)

// GetCorrelationID extracts the correlation id from echo.Context.
// If not found, generates a new UUID.
func GetCorrelationID(c echo.Context) string {
	val := c.Get(string(KeyCorrelationID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetCorrelationID sets the correlation id in echo.Context.
func SetCorrelationID(c echo.Context, correlationID string) {
	c.Set(string(KeyCorrelationID), correlationID)
}

// GetCorrelationIDFromContext extracts the correlation id from a standard
// context.Context. If not found, returns empty string.
func GetCorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCorrelationID).(string); ok {
		return id
	}

	return ""
}

// WithCorrelationID returns a new context with the correlation id.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, KeyCorrelationID, correlationID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetPrincipal extracts the authenticated principal from context.Context.
// The second return is false for anonymous callers.
func GetPrincipal(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal)

	return principal, ok && principal != nil
}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}
