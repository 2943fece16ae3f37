package handlers

import (
	"net/http"

	request "fieldflow/internal/adapter/http/dto/request"
	response "fieldflow/internal/adapter/http/dto/response"
	"fieldflow/internal/usecase"
	"fieldflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles invoice drafting, both attached to a work order and
// as a standalone preview.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GenerateForWorkOrder drafts an invoice for the order and attaches it,
// setting the status to Invoiced. Missing payload fields fall back to the
// order's stored values.
func (h *InvoiceHandler) GenerateForWorkOrder(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.GenerateForWorkOrder(c.Request.Context(), c.Param("id"), toInvoiceInput(payload))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceOutcome(outcome))
}

// Preview drafts an invoice without touching the store.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.Preview(c.Request.Context(), toInvoiceInput(payload))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceOutcome(outcome))
}

func toInvoiceInput(payload request.InvoiceRequest) usecase.InvoiceInput {
	in := usecase.InvoiceInput{
		JobSummary:    payload.JobSummary,
		PartCosts:     payload.Parts(),
		LaborEstimate: payload.LaborEstimate,
		TaxRate:       payload.TaxRate,
	}
	customer := payload.Customer()
	if customer.Name != "" || customer.Email != "" || customer.Phone != "" || customer.Address != "" {
		in.CustomerDetails = customer
	}
	return in
}
