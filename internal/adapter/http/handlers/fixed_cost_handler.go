package handlers

import (
	"errors"
	"net/http"
	"time"

	"finestra/internal/adapter/http/dto/request"
	"finestra/internal/adapter/http/dto/response"
	"finestra/internal/adapter/http/middleware"
	"finestra/internal/adapter/persistence/repository"
	"finestra/internal/usecase"
	"finestra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFixedCostPayload = pkg.NewDomainErrorSimple("INVALID_FIXED_COST_INPUT", "Invalid fixed cost payload", http.StatusBadRequest)

// FixedCostHandler handles HTTP requests for recurring-cost templates.

type FixedCostHandler struct {
	usecase usecase.IFixedCostUseCase
}

func NewFixedCostHandler(uc usecase.IFixedCostUseCase) *FixedCostHandler {
	return &FixedCostHandler{usecase: uc}
}

func (h *FixedCostHandler) CreateFixedCost(c *gin.Context) {
	var payload request.FixedCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFixedCostPayload.HTTPStatus, errInvalidFixedCostPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidFixedCostPayload.HTTPStatus, errInvalidFixedCostPayload.ToHTTPError())
		return
	}

	fc, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		appErr := mapFixedCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFixedCost(fc))
}

func (h *FixedCostHandler) GetFixedCost(c *gin.Context) {
	fc, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapFixedCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFixedCost(fc))
}

func (h *FixedCostHandler) ListFixedCosts(c *gin.Context) {
	templates, err := h.usecase.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapFixedCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFixedCosts(templates))
}

func (h *FixedCostHandler) UpdateFixedCost(c *gin.Context) {
	var payload request.FixedCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFixedCostPayload.HTTPStatus, errInvalidFixedCostPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidFixedCostPayload.HTTPStatus, errInvalidFixedCostPayload.ToHTTPError())
		return
	}

	fc, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		appErr := mapFixedCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFixedCost(fc))
}

func (h *FixedCostHandler) DeleteFixedCost(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapFixedCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateCharge triggers the monthly rollover of one template.
func (h *FixedCostHandler) GenerateCharge(c *gin.Context) {
	item, fc, err := h.usecase.GenerateCharge(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapFixedCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.GeneratedChargeResponse{
		Item:      response.FromCostItem(item, time.Now().UTC()),
		FixedCost: response.FromFixedCost(fc),
	})
}

func mapFixedCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidFixedCostID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingNextPayment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFixedCostNotFound):
		return pkg.NewDomainErrorSimple("FIXED_COST_NOT_FOUND", "Fixed cost not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrChargeAlreadyGenerated):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_GENERATED", "Charge already generated for this period", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
