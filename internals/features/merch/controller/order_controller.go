package controller

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	catalogModel "utsav_backend/internals/features/catalog/model"
	mailerService "utsav_backend/internals/features/mailer/service"
	"utsav_backend/internals/features/merch/dto"
	"utsav_backend/internals/features/merch/model"
	pipeline "utsav_backend/internals/features/submission/service"
	helper "utsav_backend/internals/helpers"
	"utsav_backend/internals/helpers/refid"
	"utsav_backend/internals/helpers/validation"
)

type OrderController struct {
	Pipeline *pipeline.Pipeline
}

func NewOrderController(p *pipeline.Pipeline) *OrderController {
	return &OrderController{Pipeline: p}
}

var merchCfg = pipeline.Config{
	IDPrefix:   refid.PrefixMerch,
	StorageDir: "merch",
	Visibility: pipeline.BucketPublic,
	EmailType:  mailerService.TypeMerch,
}

// resolveCart prices the cart against the catalog: unknown items and
// sizes are rejected, quantities clamped to 1..5.
func resolveCart(itemsJSON string) ([]dto.ResolvedItem, int, error) {
	var cart []dto.CartItem
	if err := json.Unmarshal([]byte(itemsJSON), &cart); err != nil {
		return nil, 0, fmt.Errorf("items is not valid JSON")
	}
	if len(cart) == 0 {
		return nil, 0, fmt.Errorf("your cart is empty")
	}

	resolved := make([]dto.ResolvedItem, 0, len(cart))
	total := 0
	for _, line := range cart {
		item := catalogModel.MerchItemByID(line.ItemID)
		if item == nil {
			return nil, 0, fmt.Errorf("unknown item %q", line.ItemID)
		}

		sizeOK := false
		for _, s := range item.Sizes {
			if strings.EqualFold(s, line.Size) {
				sizeOK = true
				break
			}
		}
		if !sizeOK {
			return nil, 0, fmt.Errorf("size %q not available for %s", line.Size, item.Name)
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		if qty > 5 {
			qty = 5
		}

		resolved = append(resolved, dto.ResolvedItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Size:     strings.ToUpper(line.Size),
			Quantity: qty,
			Price:    item.Price,
		})
		total += item.Price * qty
	}
	return resolved, total, nil
}

// POST /api/merch/orders
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	var body dto.CreateOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validation.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	items, total, err := resolveCart(body.ItemsJSON)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed",
			fiber.Map{"items": err.Error()})
	}

	screenshot, _ := c.FormFile("payment_screenshot")
	if err := validation.CheckScreenshot(screenshot, total); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed",
			fiber.Map{"payment_screenshot": err.Error()})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode order items")
	}

	res, err := ctrl.Pipeline.Run(c.UserContext(), merchCfg, screenshot,
		func(id, attachmentRef string) interface{} {
			order := &model.MerchOrder{
				OrderID:     id,
				Name:        strings.TrimSpace(body.Name),
				Email:       strings.TrimSpace(body.Email),
				Phone:       strings.TrimSpace(body.Phone),
				Institution: strings.TrimSpace(body.Institution),
				Items:       datatypes.JSON(itemsJSON),
				TotalAmount: total,
			}
			if attachmentRef != "" {
				order.PaymentScreenshotURL = &attachmentRef
			}
			return order
		},
		func(id string) map[string]string {
			return map[string]string{
				"reference_id": id,
				"to_email":     strings.TrimSpace(body.Email),
				"name":         strings.TrimSpace(body.Name),
				"total_amount": strconv.Itoa(total),
				"item_count":   strconv.Itoa(len(items)),
			}
		})
	if err != nil {
		return pipeline.RespondError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order received, payment under verification", fiber.Map{
		"order_id":     res.ReferenceID,
		"email":        strings.TrimSpace(body.Email),
		"total_amount": total,
	})
}
