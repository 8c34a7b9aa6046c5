package controller

import (
	"github.com/gofiber/fiber/v2"

	"utsav_backend/internals/features/catalog/model"
	helper "utsav_backend/internals/helpers"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GET /api/catalog/categories
func (ctrl *CatalogController) GetCategories(c *fiber.Ctx) error {
	return helper.Success(c, "Catalog loaded", model.Categories)
}

// GET /api/catalog/events/:event_id
func (ctrl *CatalogController) GetEvent(c *fiber.Ctx) error {
	ev, cat := model.EventByID(c.Params("event_id"))
	if ev == nil {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.Success(c, "Event loaded", fiber.Map{
		"event":    ev,
		"category": fiber.Map{"id": cat.ID, "title": cat.Title, "secretary": cat.Secretary},
	})
}

// GET /api/catalog/delegate-tiers
func (ctrl *CatalogController) GetDelegateTiers(c *fiber.Ctx) error {
	return helper.Success(c, "Delegate tiers loaded", model.DelegateTiers)
}

// GET /api/catalog/concerts
func (ctrl *CatalogController) GetConcerts(c *fiber.Ctx) error {
	return helper.Success(c, "Concert shows loaded", model.ConcertShows)
}

// GET /api/catalog/merch
func (ctrl *CatalogController) GetMerch(c *fiber.Ctx) error {
	return helper.Success(c, "Merch catalog loaded", model.MerchItems)
}
