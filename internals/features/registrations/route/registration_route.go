package route

import (
	"github.com/gofiber/fiber/v2"

	registrationController "utsav_backend/internals/features/registrations/controller"
	pipeline "utsav_backend/internals/features/submission/service"
)

func RegistrationRoutes(api fiber.Router, p *pipeline.Pipeline) {
	ctrl := registrationController.NewRegistrationController(p)
	api.Post("/", ctrl.CreateRegistration)
}
