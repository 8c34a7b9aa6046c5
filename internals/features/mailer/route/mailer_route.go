package route

import (
	"github.com/gofiber/fiber/v2"

	mailerController "utsav_backend/internals/features/mailer/controller"
	mailerService "utsav_backend/internals/features/mailer/service"
)

func MailerRoutes(api fiber.Router, m *mailerService.Mailer) {
	ctrl := mailerController.NewMailerController(m)
	api.Post("/send-email", ctrl.SendEmail)
}
