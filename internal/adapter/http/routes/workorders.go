package routes

import (
	"fieldflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
	PathAssistant  = "/assistant"
	PathInvoices   = "/invoices"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, assistantHandler *handlers.AssistantHandler, invoiceHandler *handlers.InvoiceHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.GET("", workOrderHandler.ListWorkOrders)
		workOrders.GET("/calendar", workOrderHandler.CalendarDay)
		workOrders.GET("/calendar/days", workOrderHandler.CalendarEventDays)
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
		workOrders.PATCH("/:id", workOrderHandler.PatchWorkOrder)
		workOrders.DELETE("/:id", workOrderHandler.DeleteWorkOrder)
		workOrders.POST("/:id/analysis", assistantHandler.Analyze)
		workOrders.POST("/:id/coordination", assistantHandler.Coordinate)
		workOrders.POST("/:id/invoice", invoiceHandler.GenerateForWorkOrder)
	}

	assistant := rg.Group(PathAssistant)
	{
		assistant.POST("/transcriptions", assistantHandler.Transcribe)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/preview", invoiceHandler.Preview)
	}
}
