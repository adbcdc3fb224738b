package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/internal/api/presenters"
	"github.com/rubeenavs/foodwise/pkg/recipe"
	"github.com/rubeenavs/foodwise/pkg/recommendation"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRecommendations(c *fiber.Ctx) error
		GetLeftovers(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService         recipe.RecipeService
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	recommendationService recommendation.RecommendationService,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:         recipeService,
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendationService.Recommend(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recipeHandler) GetLeftovers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	pax, err := strconv.Atoi(c.Query("pax", "1"))
	if err != nil || pax < 1 {
		pax = 1
	}

	res, err := h.recommendationService.Leftovers(c.Context(), userID, recipeID, pax)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetLeftovers, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLeftovers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLeftovers)
}
