package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"github.com/sirupsen/logrus"

	"kostku_backend/internals/configs"
)

const RequestIDKey = "rid"

// RequestContext: request id + deadline per request + log request lambat.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.Locals(RequestIDKey, rid)

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		if dur := time.Since(start); dur > time.Second {
			configs.Logger.WithFields(logrus.Fields{
				"rid":    rid,
				"method": c.Method(),
				"path":   c.OriginalURL(),
				"status": c.Response().StatusCode(),
				"dur_ms": dur.Milliseconds(),
			}).Warn("🐢 request lambat")
		}
		return err
	}
}
