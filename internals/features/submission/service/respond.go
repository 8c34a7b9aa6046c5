package service

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "utsav_backend/internals/helpers"
)

// RespondError maps a pipeline failure onto the user-facing message
// for the step that failed. Shared by all four flow controllers.
func RespondError(c *fiber.Ctx, err error) error {
	if step, ok := err.(*StepError); ok && step.Step == "upload" {
		log.Printf("[SUBMIT] upload failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to upload payment screenshot. Please try again.")
	}
	log.Printf("[SUBMIT] insert failed: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Failed to save your submission. Please try again.")
}
