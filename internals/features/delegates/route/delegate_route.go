package route

import (
	"github.com/gofiber/fiber/v2"

	delegateController "utsav_backend/internals/features/delegates/controller"
	pipeline "utsav_backend/internals/features/submission/service"
)

func DelegateRoutes(api fiber.Router, p *pipeline.Pipeline) {
	ctrl := delegateController.NewDelegateController(p)
	api.Post("/", ctrl.CreateDelegate)
}
