package route

import (
	"github.com/gofiber/fiber/v2"

	"kostku_backend/internals/features/utils/navigation/controller"
)

func NavigationPublicRoutes(public fiber.Router, mw ...fiber.Handler) {
	ctl := controller.NewNavigationController()
	g := public.Group("/navigation", mw...)

	g.Get("/", ctl.Links)
	g.Get("/home", ctl.Home)
}
