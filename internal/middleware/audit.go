package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/queue"
)

// AuditTrail publishes a SecurityEvent for every request passing through
// it. Publishing happens in a detached goroutine with its own timeout so
// a slow or absent broker never delays the request; the publisher is
// nil-safe when no broker is configured.
func AuditTrail(pub *queue.Publisher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ev := queue.SecurityEvent{
				Method:     req.Method,
				Path:       req.URL.Path,
				Query:      req.URL.RawQuery,
				RemoteAddr: c.RealIP(),
				UserAgent:  req.UserAgent(),
				SessionID:  SessionID(c),
				ObservedAt: time.Now().UTC().Format(time.RFC3339),
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = pub.Publish(ctx, ev)
			}()
			return next(c)
		}
	}
}
