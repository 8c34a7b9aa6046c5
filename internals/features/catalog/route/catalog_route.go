package route

import (
	"github.com/gofiber/fiber/v2"

	catalogController "utsav_backend/internals/features/catalog/controller"
)

// CatalogRoutes exposes the static catalog read API.
func CatalogRoutes(api fiber.Router) {
	ctrl := catalogController.NewCatalogController()

	api.Get("/categories", ctrl.GetCategories)
	api.Get("/events/:event_id", ctrl.GetEvent)
	api.Get("/delegate-tiers", ctrl.GetDelegateTiers)
	api.Get("/concerts", ctrl.GetConcerts)
	api.Get("/merch", ctrl.GetMerch)
}
