package response

import "fieldflow/internal/usecase"

// InvoiceResponse reports both totals: total_amount is the locally computed
// source of truth, gateway_amount is what the drafting model claimed. When
// they disagree beyond a cent, warning explains the discrepancy.
type InvoiceResponse struct {
	InvoiceText   string             `json:"invoice_text"`
	TotalAmount   float64            `json:"total_amount"`
	GatewayAmount float64            `json:"gateway_amount"`
	Warning       string             `json:"warning,omitempty"`
	WorkOrder     *WorkOrderResponse `json:"work_order,omitempty"`
}

func FromInvoiceOutcome(o usecase.InvoiceOutcome) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceText:   o.InvoiceText,
		TotalAmount:   usecase.RoundCurrency(o.TotalAmount),
		GatewayAmount: usecase.RoundCurrency(o.GatewayAmount),
		Warning:       o.MismatchWarning,
	}
	if o.WorkOrder != nil {
		wo := FromWorkOrder(*o.WorkOrder)
		resp.WorkOrder = &wo
	}
	return resp
}
