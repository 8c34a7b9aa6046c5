package controller

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	catalogModel "utsav_backend/internals/features/catalog/model"
	mailerService "utsav_backend/internals/features/mailer/service"
	"utsav_backend/internals/features/registrations/dto"
	"utsav_backend/internals/features/registrations/model"
	pipeline "utsav_backend/internals/features/submission/service"
	helper "utsav_backend/internals/helpers"
	"utsav_backend/internals/helpers/refid"
	"utsav_backend/internals/helpers/validation"
)

// Registration forms accept international numbers.
const phoneMode = validation.PhoneLenient

type RegistrationController struct {
	Pipeline *pipeline.Pipeline
}

func NewRegistrationController(p *pipeline.Pipeline) *RegistrationController {
	return &RegistrationController{Pipeline: p}
}

var registrationCfg = pipeline.Config{
	IDPrefix:   refid.PrefixRegistration,
	StorageDir: "registrations",
	Visibility: pipeline.BucketPublic,
	EmailType:  mailerService.TypeEvent,
}

// POST /api/registrations
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var body dto.CreateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}

	if err := validation.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	event, category := catalogModel.EventByID(body.EventID)
	if event == nil {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}
	if event.Status != catalogModel.StatusOpen {
		return helper.Error(c, fiber.StatusBadRequest, "Registrations for this event are not open")
	}

	// the fee always comes from the catalog, never from the form
	fee := event.Fee

	roster, err := body.Roster()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	spec, err := validation.ParseTeamType(event.TeamType)
	if err != nil {
		log.Printf("[CATALOG] bad team type on %s: %v", event.ID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Event is misconfigured, please contact the organizers")
	}
	if errs := validation.ValidateTeam(roster, spec, phoneMode); errs != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	if fee > 0 && strings.TrimSpace(body.DelegateID) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed",
			fiber.Map{"delegate_id": "A delegate ID is required for paid events"})
	}

	screenshot, _ := c.FormFile("payment_screenshot")
	if err := validation.CheckScreenshot(screenshot, fee); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed",
			fiber.Map{"payment_screenshot": err.Error()})
	}

	rosterJSON, err := json.Marshal(roster)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode team members")
	}

	res, err := ctrl.Pipeline.Run(c.UserContext(), registrationCfg, screenshot,
		func(id, attachmentRef string) interface{} {
			reg := &model.Registration{
				RegistrationID:      id,
				EventID:             event.ID,
				EventName:           event.Title,
				CategoryName:        category.Title,
				CaptainName:         roster[0].Name,
				CaptainEmail:        strings.TrimSpace(body.CaptainEmail),
				CaptainPhone:        roster[0].Phone,
				CaptainYear:         roster[0].Year,
				Institution:         strings.TrimSpace(body.Institution),
				ParticipantCategory: strings.TrimSpace(body.ParticipantCategory),
				TeamMembers:         datatypes.JSON(rosterJSON),
				FeeAmount:           fee,
			}
			if d := strings.TrimSpace(body.DelegateID); d != "" {
				reg.DelegateID = &d
			}
			if cc := strings.TrimSpace(body.CouponCode); cc != "" {
				reg.CouponCode = &cc
			}
			if attachmentRef != "" {
				reg.PaymentScreenshotURL = &attachmentRef
			}
			return reg
		},
		func(id string) map[string]string {
			return map[string]string{
				"reference_id":  id,
				"to_email":      strings.TrimSpace(body.CaptainEmail),
				"captain_name":  roster[0].Name,
				"event_name":    event.Title,
				"category_name": category.Title,
				"fee_amount":    strconv.Itoa(fee),
				"institution":   strings.TrimSpace(body.Institution),
			}
		})
	if err != nil {
		return pipeline.RespondError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration received", fiber.Map{
		"registration_id": res.ReferenceID,
		"email":           strings.TrimSpace(body.CaptainEmail),
	})
}
