package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"kostku_backend/internals/configs"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			configs.Logger.WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"rid":    c.Locals(RequestIDKey),
			}).Error(fmt.Sprintf("💥 panic: %v", e))
		},
	})
}
