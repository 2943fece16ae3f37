package handlers

import (
	"errors"
	"net/http"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"
	"fieldflow/pkg"

	"github.com/gin-gonic/gin"
)

// writeError maps use case errors onto the HTTP error taxonomy. Validation
// failures carry per-field detail so forms can render errors inline; store
// contract violations and gateway failures map to their own status codes.
func writeError(c *gin.Context, err error) {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(ve.Fields))
		return
	}

	appErr := mapDomainError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateWorkOrder):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ALREADY_EXISTS", "Work order id already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleRevision):
		return pkg.NewDomainErrorSimple("WORK_ORDER_CONFLICT", "Work order changed while the operation was in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssistantGatewayTimeout):
		return pkg.NewDomainErrorSimple("ASSISTANT_TIMEOUT", "Assistant call timed out", http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrAssistantGateway):
		return pkg.NewDomainErrorSimple("ASSISTANT_FAILED", "Assistant call failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrAssistantNotConfigured):
		return pkg.NewDomainErrorSimple("ASSISTANT_NOT_CONFIGURED", "Assistant gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
