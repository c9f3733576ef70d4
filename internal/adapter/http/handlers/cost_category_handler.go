package handlers

import (
	"errors"
	"net/http"

	"finestra/internal/adapter/http/dto/request"
	"finestra/internal/adapter/http/dto/response"
	"finestra/internal/adapter/http/middleware"
	"finestra/internal/usecase"
	"finestra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCategoryPayload = pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)

// CostCategoryHandler handles HTTP requests for cost categories.

type CostCategoryHandler struct {
	usecase usecase.ICostCategoryUseCase
}

func NewCostCategoryHandler(uc usecase.ICostCategoryUseCase) *CostCategoryHandler {
	return &CostCategoryHandler{usecase: uc}
}

func (h *CostCategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostCategories(categories))
}

func (h *CostCategoryHandler) CreateCategory(c *gin.Context) {
	var payload request.CostCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.Name)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCostCategory(category))
}

func (h *CostCategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCategoryID), errors.Is(err, usecase.ErrInvalidCategoryName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
