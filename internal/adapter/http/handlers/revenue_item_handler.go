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

var errInvalidRevenuePayload = pkg.NewDomainErrorSimple("INVALID_REVENUE_INPUT", "Invalid revenue item payload", http.StatusBadRequest)

// RevenueItemHandler handles HTTP requests for receivables. Creation and
// project listing are nested under the project routes because revenue is
// always project-scoped.

type RevenueItemHandler struct {
	usecase usecase.IRevenueItemUseCase
}

func NewRevenueItemHandler(uc usecase.IRevenueItemUseCase) *RevenueItemHandler {
	return &RevenueItemHandler{usecase: uc}
}

func (h *RevenueItemHandler) CreateRevenueItem(c *gin.Context) {
	var payload request.RevenueItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRevenuePayload.HTTPStatus, errInvalidRevenuePayload.ToHTTPError())
		return
	}

	in, err := payload.ToCreateInput()
	if err != nil {
		c.JSON(errInvalidRevenuePayload.HTTPStatus, errInvalidRevenuePayload.ToHTTPError())
		return
	}

	items, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRevenueItems(items, time.Now().UTC()))
}

func (h *RevenueItemHandler) GetRevenueItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueItem(item, time.Now().UTC()))
}

func (h *RevenueItemHandler) ListRevenueItems(c *gin.Context) {
	items, err := h.usecase.ListAll(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueItems(items, time.Now().UTC()))
}

func (h *RevenueItemHandler) ListProjectRevenueItems(c *gin.Context) {
	items, err := h.usecase.ListByProject(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueItems(items, time.Now().UTC()))
}

func (h *RevenueItemHandler) UpdateRevenueItem(c *gin.Context) {
	var payload request.RevenueItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRevenuePayload.HTTPStatus, errInvalidRevenuePayload.ToHTTPError())
		return
	}

	in, err := payload.ToUpdateInput()
	if err != nil {
		c.JSON(errInvalidRevenuePayload.HTTPStatus, errInvalidRevenuePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRevenueItem(item, time.Now().UTC()))
}

func (h *RevenueItemHandler) MarkRevenueItemReceived(c *gin.Context) {
	var payload request.MarkPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRevenuePayload.HTTPStatus, errInvalidRevenuePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.MarkReceived(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.Amount)
	if err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRevenueItem(item, time.Now().UTC()))
}

func (h *RevenueItemHandler) DeleteRevenueItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapRevenueItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRevenueItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidRevenueItemID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingTransactionDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRevenueItemNotFound):
		return pkg.NewDomainErrorSimple("REVENUE_ITEM_NOT_FOUND", "Revenue item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
