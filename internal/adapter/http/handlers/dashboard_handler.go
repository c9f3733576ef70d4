package handlers

import (
	"errors"
	"net/http"
	"time"

	"finestra/internal/adapter/http/dto/response"
	"finestra/internal/adapter/http/middleware"
	"finestra/internal/usecase"
	"finestra/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the read-only aggregation endpoints.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) GetProjectOverview(c *gin.Context) {
	overview, err := h.usecase.ProjectOverview(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectOverview(overview, time.Now().UTC()))
}

func (h *DashboardHandler) GetCashFlow(c *gin.Context) {
	cashFlow, err := h.usecase.CashFlow(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cashFlow)
}

func (h *DashboardHandler) GetAgenda(c *gin.Context) {
	agenda, err := h.usecase.Agenda(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAgenda(agenda, time.Now().UTC()))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
