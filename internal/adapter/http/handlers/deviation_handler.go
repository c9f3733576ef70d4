package handlers

import (
	"errors"
	"io"
	"net/http"

	"finestra/internal/adapter/http/dto/request"
	"finestra/internal/adapter/http/middleware"
	"finestra/internal/usecase"
	"finestra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDeviationPayload = pkg.NewDomainErrorSimple("INVALID_DEVIATION_INPUT", "Invalid deviation payload", http.StatusBadRequest)

// DeviationHandler handles the cost-deviation assistant endpoint.

type DeviationHandler struct {
	usecase usecase.IDeviationUseCase
}

func NewDeviationHandler(uc usecase.IDeviationUseCase) *DeviationHandler {
	return &DeviationHandler{usecase: uc}
}

// AnalyzeProject runs the analysis for one project. The body is optional;
// an empty one means "use the default threshold".
func (h *DeviationHandler) AnalyzeProject(c *gin.Context) {
	var payload request.DeviationRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidDeviationPayload.HTTPStatus, errInvalidDeviationPayload.ToHTTPError())
		return
	}

	analysis, err := h.usecase.AnalyzeProject(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ThresholdPct)
	if err != nil {
		appErr := mapDeviationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func mapDeviationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPredictedCost):
		return pkg.NewDomainErrorSimple("MISSING_PREDICTED_COST", "Project has no planned cost to compare against", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
