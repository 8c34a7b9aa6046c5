package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	catalogModel "utsav_backend/internals/features/catalog/model"
	"utsav_backend/internals/features/concerts/dto"
	"utsav_backend/internals/features/concerts/model"
	delegateModel "utsav_backend/internals/features/delegates/model"
	mailerService "utsav_backend/internals/features/mailer/service"
	pipeline "utsav_backend/internals/features/submission/service"
	helper "utsav_backend/internals/helpers"
	"utsav_backend/internals/helpers/validation"
)

type BookingController struct {
	Pipeline *pipeline.Pipeline
}

func NewBookingController(p *pipeline.Pipeline) *BookingController {
	return &BookingController{Pipeline: p}
}

// POST /api/concerts/:show_id/bookings
func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	show := catalogModel.ShowByID(c.Params("show_id"))
	if show == nil {
		return helper.Error(c, fiber.StatusNotFound, "Concert not found")
	}

	var body dto.CreateBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validation.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ticket := show.TicketByID(strings.ToLower(strings.TrimSpace(body.TicketID)))
	if ticket == nil {
		return helper.Error(c, fiber.StatusNotFound, "Unknown ticket type")
	}

	// couple tickets need the partner before anything is uploaded
	if ticket.Couple {
		errs := fiber.Map{}
		if strings.TrimSpace(body.PartnerName) == "" {
			errs["partner_name"] = "Partner name is required for couple tickets"
		}
		if !validation.PhoneStrict.Valid(strings.TrimSpace(body.PartnerPhone)) {
			errs["partner_phone"] = "A valid partner phone number is required for couple tickets"
		}
		if len(errs) > 0 {
			return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
		}
	}

	screenshot, _ := c.FormFile("payment_screenshot")
	if err := validation.CheckScreenshot(screenshot, ticket.Price); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed",
			fiber.Map{"payment_screenshot": err.Error()})
	}

	cfg := pipeline.Config{
		IDPrefix:   show.Prefix,
		StorageDir: "concerts/" + show.ID,
		Visibility: pipeline.BucketPrivate,
		EmailType:  mailerService.TypeConcert,
	}

	res, err := ctrl.Pipeline.Run(c.UserContext(), cfg, screenshot,
		func(id, attachmentRef string) interface{} {
			b := &model.ConcertBooking{
				BookingID:     id,
				ShowID:        show.ID,
				Name:          strings.TrimSpace(body.Name),
				Email:         strings.TrimSpace(body.Email),
				Phone:         strings.TrimSpace(body.Phone),
				Institution:   strings.TrimSpace(body.Institution),
				TicketType:    ticket.ID,
				TicketPrice:   ticket.Price,
				PaymentStatus: delegateModel.PaymentPending,
			}
			if ticket.Couple {
				pn := strings.TrimSpace(body.PartnerName)
				pp := strings.TrimSpace(body.PartnerPhone)
				b.PartnerName = &pn
				b.PartnerPhone = &pp
			}
			if attachmentRef != "" {
				b.PaymentScreenshotKey = &attachmentRef
			}
			return b
		},
		func(id string) map[string]string {
			return map[string]string{
				"reference_id": id,
				"to_email":     strings.TrimSpace(body.Email),
				"name":         strings.TrimSpace(body.Name),
				"show_name":    show.Name,
				"ticket_type":  ticket.Name,
				"ticket_price": strconv.Itoa(ticket.Price),
			}
		})
	if err != nil {
		return pipeline.RespondError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Booking received, payment under verification", fiber.Map{
		"booking_id": res.ReferenceID,
		"email":      strings.TrimSpace(body.Email),
	})
}
