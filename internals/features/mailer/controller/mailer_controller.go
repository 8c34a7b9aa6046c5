package controller

import (
	"github.com/gofiber/fiber/v2"

	mailerService "utsav_backend/internals/features/mailer/service"
	helper "utsav_backend/internals/helpers"
)

type MailerController struct {
	Mailer *mailerService.Mailer
}

func NewMailerController(m *mailerService.Mailer) *MailerController {
	return &MailerController{Mailer: m}
}

type sendEmailRequest struct {
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields"`
}

// POST /api/send-email
// Synchronous variant of the relay for the browser: unlike the
// pipeline's background send, a failure here is reported to the caller.
func (ctrl *MailerController) SendEmail(c *fiber.Ctx) error {
	var body sendEmailRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if body.Type == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing email type")
	}

	if err := ctrl.Mailer.Send(c.UserContext(), body.Type, body.Fields); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send email")
	}
	return helper.Success(c, "Email sent", nil)
}
