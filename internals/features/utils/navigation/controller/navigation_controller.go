package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"kostku_backend/internals/features/utils/navigation/model"
	helper "kostku_backend/internals/helpers"
)

type NavigationController struct{}

func NewNavigationController() *NavigationController {
	return &NavigationController{}
}

// GET /navigation?path=/payments
func (nc *NavigationController) Links(c *fiber.Ctx) error {
	setPublicCache(c, 300)
	return helper.JsonOK(c, "ok", model.Links(c.Query("path")))
}

// GET /navigation/home
func (nc *NavigationController) Home(c *fiber.Ctx) error {
	setPublicCache(c, 3600)
	return helper.JsonOK(c, "ok", model.HomeCards())
}

// Cache-Control publik (konten statis)
func setPublicCache(c *fiber.Ctx, seconds int) {
	c.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", seconds, seconds*2))
}
