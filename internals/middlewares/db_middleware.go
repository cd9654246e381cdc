package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const DBLocalsKey = "db"

// DBMiddleware untuk menambahkan koneksi db ke context request
func DBMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(DBLocalsKey, db)
		return c.Next()
	}
}

// DBFrom: nil kalau DBMiddleware tidak dipasang.
func DBFrom(c *fiber.Ctx) *gorm.DB {
	db, _ := c.Locals(DBLocalsKey).(*gorm.DB)
	return db
}
