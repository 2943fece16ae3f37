package handlers

import (
	"net/http"
	"time"

	request "fieldflow/internal/adapter/http/dto/request"
	response "fieldflow/internal/adapter/http/dto/response"
	"fieldflow/internal/usecase"
	"fieldflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	errInvalidCalendarDate     = pkg.NewDomainErrorSimple("INVALID_CALENDAR_DATE", "date must be formatted YYYY-MM-DD", http.StatusBadRequest)
)

const calendarDateLayout = "2006-01-02"

// WorkOrderHandler handles the work order CRUD and calendar routes.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder handles the form-submit creation path. The server assigns
// id, creation time and the initial "New" status.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	urgency, ok := payload.ResolveUrgency()
	if !ok {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), usecase.CreateWorkOrderInput{
		CustomerDetails:    payload.CustomerDetails.ToEntity(),
		JobDescription:     payload.JobDescription,
		Location:           payload.Location,
		Urgency:            urgency,
		Deadline:           payload.Deadline,
		TranscriptionNotes: payload.TranscriptionNotes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderList(orders))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// PatchWorkOrder merges a partial update into the order; fields absent from
// the body are preserved.
func (h *WorkOrderHandler) PatchWorkOrder(c *gin.Context) {
	var payload request.WorkOrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	patch, verr := payload.ToPatch()
	if verr != nil {
		writeError(c, verr)
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CalendarDay returns the orders whose deadline falls on the requested day,
// matching at day granularity regardless of time of day.
func (h *WorkOrderHandler) CalendarDay(c *gin.Context) {
	raw := c.Query("date")
	day, err := time.ParseInLocation(calendarDateLayout, raw, time.UTC)
	if err != nil {
		c.JSON(errInvalidCalendarDate.HTTPStatus, errInvalidCalendarDate.ToHTTPError())
		return
	}

	orders, err := h.usecase.FindByDeadlineDay(c.Request.Context(), day)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarDay(day, orders))
}

func (h *WorkOrderHandler) CalendarEventDays(c *gin.Context) {
	days, err := h.usecase.EventDays(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEventDays(days))
}
