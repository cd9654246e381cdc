package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
)

// FromFiberError mengubah error hasil Transaction / service menjadi
// response JSON konsisten. Dipakai juga oleh global ErrorHandler.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "data tidak ditemukan")
	case IsUniqueViolation(err):
		return JsonError(c, fiber.StatusConflict, "data sudah ada")
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// StatusOf: kode HTTP yang akan dipakai FromFiberError untuk err.
func StatusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case IsUniqueViolation(err):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler: global fiber ErrorHandler → envelope error standar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if status := StatusOf(err); status >= 500 {
		configs.Logger.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).WithError(err).Error("❌ request gagal")
	}
	return FromFiberError(c, err)
}
