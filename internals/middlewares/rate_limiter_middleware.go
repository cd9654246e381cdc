package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"kostku_backend/internals/configs"
	helper "kostku_backend/internals/helpers"
)

// Global limiter: endpoint publik biasa (navigation).
// GLOBAL_RATE_LIMIT = request per menit per IP (default 300).
func GlobalRateLimiter() fiber.Handler {
	max := int(configs.GetEnvInt64("GLOBAL_RATE_LIMIT", 300))
	if max <= 0 {
		max = 300
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
		},
	})
}

// PortalRateLimiter: portal penyewa publik (tanpa login), per IP.
// PORTAL_RATE_LIMIT = jumlah request per menit (default 20).
func PortalRateLimiter() fiber.Handler {
	max := int(configs.GetEnvInt64("PORTAL_RATE_LIMIT", 20))
	if max <= 0 {
		max = 20
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "portal:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "❌ Terlalu banyak kiriman dari portal. Coba beberapa saat lagi.")
		},
	})
}
