package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "utsav_backend/internals/features/admin/controller"
	adminMiddleware "utsav_backend/internals/features/admin/middleware"
)

func AdminRoutes(api fiber.Router, db *gorm.DB, signer adminController.URLSigner) {
	ctrl := adminController.NewAdminController(db, signer)

	// password-per-request surface used by the dashboard
	api.Post("/", ctrl.HandleAction)
	api.Post("/login", ctrl.Login)

	// Bearer-token reads
	authed := api.Group("/", adminMiddleware.AdminJWT())
	authed.Get("/counts", ctrl.GetCounts)
	authed.Get("/registrations", ctrl.GetRegistrations)
	authed.Get("/delegates", ctrl.GetDelegates)
	authed.Get("/concert-bookings", ctrl.GetConcertBookings)
}
