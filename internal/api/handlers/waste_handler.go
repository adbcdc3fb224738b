package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/internal/api/presenters"
	"github.com/rubeenavs/foodwise/pkg/waste"
)

type (
	WasteHandler interface {
		GetWasteSummary(c *fiber.Ctx) error
		GetWeeklyWaste(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
	}
)

func NewWasteHandler(wasteService waste.WasteService) WasteHandler {
	return &wasteHandler{wasteService: wasteService}
}

func (h *wasteHandler) GetWasteSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.wasteService.GetWasteSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteSummary)
}

func (h *wasteHandler) GetWeeklyWaste(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.wasteService.GetWeeklyWaste(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeeklyWaste, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeeklyWaste)
}
