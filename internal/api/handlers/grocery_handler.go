package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/internal/api/presenters"
	"github.com/rubeenavs/foodwise/pkg/grocery"
)

type (
	GroceryHandler interface {
		AddGrocery(c *fiber.Ctx) error
		UpdateGrocery(c *fiber.Ctx) error
		DeleteGrocery(c *fiber.Ctx) error
		GetGroceries(c *fiber.Ctx) error
		GetUpcomingExpiries(c *fiber.Ctx) error
		UploadBill(c *fiber.Ctx) error
		GetBillScan(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) AddGrocery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGroceryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGrocery, err)
	}

	res, err := h.groceryService.AddGrocery(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGrocery)
}

func (h *groceryHandler) UpdateGrocery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.UpdateGroceryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGrocery, err)
	}

	if err := h.groceryService.UpdateGrocery(c.Context(), batchID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGrocery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateGrocery)
}

func (h *groceryHandler) DeleteGrocery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")

	if err := h.groceryService.DeleteGrocery(c.Context(), batchID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGrocery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGrocery)
}

func (h *groceryHandler) GetGroceries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GetGroceries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceries)
}

func (h *groceryHandler) GetUpcomingExpiries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	withinDays, err := strconv.Atoi(c.Query("within_days", "3"))
	if err != nil || withinDays < 1 {
		withinDays = 3
	}

	res, err := h.groceryService.GetUpcomingExpiries(c.Context(), userID, withinDays)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiring, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpiring)
}

func (h *groceryHandler) UploadBill(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadBillRequest)

	file, err := c.FormFile("bill_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.BillImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadBill, err)
	}

	res, err := h.groceryService.UploadBill(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadBill, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusAccepted, domain.MessageSuccessUploadBill)
}

func (h *groceryHandler) GetBillScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.groceryService.GetBillScan(c.Context(), scanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBillScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBillScan)
}
