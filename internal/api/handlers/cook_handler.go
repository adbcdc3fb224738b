package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/internal/api/presenters"
	"github.com/rubeenavs/foodwise/pkg/cooking"
)

type (
	CookHandler interface {
		Cook(c *fiber.Ctx) error
		RecordWaste(c *fiber.Ctx) error
	}

	cookHandler struct {
		cookingService cooking.CookingService
		validator      *validator.Validate
	}
)

func NewCookHandler(cookingService cooking.CookingService, validator *validator.Validate) CookHandler {
	return &cookHandler{
		cookingService: cookingService,
		validator:      validator,
	}
}

func (h *cookHandler) Cook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCook, err)
	}

	res, err := h.cookingService.Cook(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStockConflict) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCook)
}

func (h *cookHandler) RecordWaste(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	eventID := c.Params("id")
	req := new(domain.RecordWasteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordWaste, err)
	}

	if err := h.cookingService.RecordWaste(c.Context(), eventID, *req.PortionWasted, userID); err != nil {
		if errors.Is(err, domain.ErrCookingEventNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRecordWaste, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordWaste, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRecordWaste)
}
