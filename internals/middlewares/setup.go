package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/middlewares/logger"
)

// RequestTimeout selaras dengan statement_timeout di DB.
const RequestTimeout = 5 * time.Second

// WithProxyConfig: X-Forwarded-For hanya dipakai kalau request datang dari TRUSTED_PROXIES.
func WithProxyConfig(cfg fiber.Config) fiber.Config {
	cfg.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = configs.TrustedProxies()
	return cfg
}

// SetupMiddlewares: urutan penting, recover paling luar.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())

	// ⚙️ performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
