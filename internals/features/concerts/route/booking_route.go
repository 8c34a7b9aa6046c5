package route

import (
	"github.com/gofiber/fiber/v2"

	concertController "utsav_backend/internals/features/concerts/controller"
	pipeline "utsav_backend/internals/features/submission/service"
)

func ConcertRoutes(api fiber.Router, p *pipeline.Pipeline) {
	ctrl := concertController.NewBookingController(p)
	api.Post("/:show_id/bookings", ctrl.CreateBooking)
}
