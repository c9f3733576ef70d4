package handlers

import (
	"errors"
	"net/http"
	"time"

	"finestra/internal/adapter/http/dto/request"
	"finestra/internal/adapter/http/dto/response"
	"finestra/internal/adapter/http/middleware"
	"finestra/internal/usecase"
	"finestra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCostItemPayload = pkg.NewDomainErrorSimple("INVALID_COST_INPUT", "Invalid cost item payload", http.StatusBadRequest)

// CostItemHandler handles HTTP requests for payables. List responses
// carry the derived status labels, so it resolves "today" once per
// request.

type CostItemHandler struct {
	usecase usecase.ICostItemUseCase
}

func NewCostItemHandler(uc usecase.ICostItemUseCase) *CostItemHandler {
	return &CostItemHandler{usecase: uc}
}

func (h *CostItemHandler) CreateCostItem(c *gin.Context) {
	var payload request.CostItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostItemPayload.HTTPStatus, errInvalidCostItemPayload.ToHTTPError())
		return
	}

	in, err := payload.ToCreateInput()
	if err != nil {
		c.JSON(errInvalidCostItemPayload.HTTPStatus, errInvalidCostItemPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCostItems(items, time.Now().UTC()))
}

func (h *CostItemHandler) GetCostItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostItem(item, time.Now().UTC()))
}

func (h *CostItemHandler) ListCostItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostItems(items, time.Now().UTC()))
}

func (h *CostItemHandler) ListProjectCostItems(c *gin.Context) {
	items, err := h.usecase.ListByProject(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostItems(items, time.Now().UTC()))
}

func (h *CostItemHandler) UpdateCostItem(c *gin.Context) {
	var payload request.CostItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostItemPayload.HTTPStatus, errInvalidCostItemPayload.ToHTTPError())
		return
	}

	in, err := payload.ToUpdateInput()
	if err != nil {
		c.JSON(errInvalidCostItemPayload.HTTPStatus, errInvalidCostItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostItem(item, time.Now().UTC()))
}

func (h *CostItemHandler) MarkCostItemPaid(c *gin.Context) {
	var payload request.MarkPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostItemPayload.HTTPStatus, errInvalidCostItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.MarkPaid(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.Amount)
	if err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostItem(item, time.Now().UTC()))
}

func (h *CostItemHandler) DeleteCostItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapCostItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCostItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCostItemID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingTransactionDate),
		errors.Is(err, usecase.ErrConflictingRecurrence):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostItemNotFound):
		return pkg.NewDomainErrorSimple("COST_ITEM_NOT_FOUND", "Cost item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
