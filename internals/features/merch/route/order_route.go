package route

import (
	"github.com/gofiber/fiber/v2"

	merchController "utsav_backend/internals/features/merch/controller"
	pipeline "utsav_backend/internals/features/submission/service"
)

func MerchRoutes(api fiber.Router, p *pipeline.Pipeline) {
	ctrl := merchController.NewOrderController(p)
	api.Post("/orders", ctrl.CreateOrder)
}
