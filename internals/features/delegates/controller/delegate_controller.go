package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	catalogModel "utsav_backend/internals/features/catalog/model"
	"utsav_backend/internals/features/delegates/dto"
	"utsav_backend/internals/features/delegates/model"
	mailerService "utsav_backend/internals/features/mailer/service"
	pipeline "utsav_backend/internals/features/submission/service"
	helper "utsav_backend/internals/helpers"
	"utsav_backend/internals/helpers/refid"
	"utsav_backend/internals/helpers/validation"
)

type DelegateController struct {
	Pipeline *pipeline.Pipeline
}

func NewDelegateController(p *pipeline.Pipeline) *DelegateController {
	return &DelegateController{Pipeline: p}
}

var delegateCfg = pipeline.Config{
	IDPrefix:   refid.PrefixDelegate,
	StorageDir: "delegates",
	Visibility: pipeline.BucketPublic,
	EmailType:  mailerService.TypeDelegate,
}

// POST /api/delegates
func (ctrl *DelegateController) CreateDelegate(c *fiber.Ctx) error {
	var body dto.CreateDelegateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validation.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	tier := catalogModel.TierByID(strings.ToLower(strings.TrimSpace(body.TierID)))
	if tier == nil {
		return helper.Error(c, fiber.StatusNotFound, "Unknown delegate tier")
	}

	screenshot, _ := c.FormFile("payment_screenshot")
	if err := validation.CheckScreenshot(screenshot, tier.Price); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed",
			fiber.Map{"payment_screenshot": err.Error()})
	}

	res, err := ctrl.Pipeline.Run(c.UserContext(), delegateCfg, screenshot,
		func(id, attachmentRef string) interface{} {
			d := &model.Delegate{
				DelegateID:    id,
				Name:          strings.TrimSpace(body.Name),
				Email:         strings.TrimSpace(body.Email),
				Phone:         strings.TrimSpace(body.Phone),
				Institution:   strings.TrimSpace(body.Institution),
				Tier:          tier.ID,
				TierPrice:     tier.Price,
				PaymentStatus: model.PaymentPending,
			}
			if attachmentRef != "" {
				d.PaymentScreenshotURL = &attachmentRef
			}
			return d
		},
		func(id string) map[string]string {
			return map[string]string{
				"reference_id": id,
				"to_email":     strings.TrimSpace(body.Email),
				"name":         strings.TrimSpace(body.Name),
				"tier":         tier.Name,
				"tier_price":   strconv.Itoa(tier.Price),
			}
		})
	if err != nil {
		return pipeline.RespondError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Delegate pass reserved, payment under verification", fiber.Map{
		"delegate_id": res.ReferenceID,
		"email":       strings.TrimSpace(body.Email),
	})
}
