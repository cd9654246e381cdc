package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"kostku_backend/internals/configs"
)

// LoggerMiddleware untuk mencatat semua request (output ke logrus).
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("APP_TIMEZONE", configs.DefaultTimezone),
		Format:     "[${time}] ${locals:rid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
		Output:     configs.Logger.Writer(),
	})
}
