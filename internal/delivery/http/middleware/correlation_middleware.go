package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	reqcontext "vetclinic/internal/delivery/context"
)

// CorrelationMiddleware assigns every request a correlation id, echoes it on
// the response and installs a request-scoped logger carrying it.
type CorrelationMiddleware struct {
	logger *slog.Logger
}

// NewCorrelationMiddleware creates a new correlation middleware.
func NewCorrelationMiddleware(logger *slog.Logger) *CorrelationMiddleware {
	return &CorrelationMiddleware{logger: logger}
}

// Handle reuses the caller-supplied X-Correlation-ID header or generates a
// fresh UUID, propagates it through the request context and mirrors it on the
// response so clients can quote it in support requests.
func (m *CorrelationMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		correlationID := strings.TrimSpace(c.Request().Header.Get(reqcontext.HeaderXCorrelationID))
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		reqcontext.SetCorrelationID(c, correlationID)
		c.Response().Header().Set(reqcontext.HeaderXCorrelationID, correlationID)

		requestLogger := m.logger.With(slog.String("correlation_id", correlationID))

		ctx := c.Request().Context()
		ctx = reqcontext.WithCorrelationID(ctx, correlationID)
		ctx = reqcontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		start := time.Now()
		// Teardown runs even when the handler panics and Recover converts
		// it to a 500; the request context dies with the request.
		defer func() {
			requestLogger.Debug("Request finished",
				slog.String("method", c.Request().Method),
				slog.String("uri", c.Request().URL.Path),
				slog.Duration("duration", time.Since(start)),
			)
		}()

		return next(c)
	}
}
