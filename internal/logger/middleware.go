package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID attaches a request id to the request context, generating one
// when the client did not send X-Request-ID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.SetUserContext(WithRequestID(c.UserContext(), reqID))
		c.Set("X-Request-ID", reqID)

		return c.Next()
	}
}

// Logging logs every request with its status and duration.
func Logging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		FromCtx(c.UserContext()).Info("incoming request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.String("ip", c.IP()),
			zap.Duration("duration_ms", time.Since(start)),
		)

		return err
	}
}
