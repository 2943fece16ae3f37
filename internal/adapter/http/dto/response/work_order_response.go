package response

import (
	"sort"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"
)

type CustomerInfoResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type PartCostResponse struct {
	PartName  string  `json:"part_name"`
	Cost      float64 `json:"cost"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type JobAnalysisResponse struct {
	PartList    string    `json:"part_list"`
	JobDuration string    `json:"job_duration"`
	ToolsNeeded string    `json:"tools_needed"`
	ManHours    string    `json:"man_hours"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
}

type InvoiceDetailResponse struct {
	Text        string    `json:"text"`
	TotalAmount float64   `json:"total_amount"`
	IssuedAt    time.Time `json:"issued_at"`
}

type WorkOrderResponse struct {
	ID                 string               `json:"id"`
	CustomerDetails    CustomerInfoResponse `json:"customer_details"`
	JobDescription     string               `json:"job_description"`
	Location           string               `json:"location"`
	Urgency            string               `json:"urgency"`
	Status             string               `json:"status"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	Revision           int64                `json:"revision"`
	Deadline           *time.Time           `json:"deadline,omitempty"`
	TranscriptionNotes string               `json:"transcription_notes,omitempty"`

	Analysis  *JobAnalysisResponse   `json:"analysis,omitempty"`
	PartCosts []PartCostResponse     `json:"part_costs,omitempty"`
	Labor     *float64               `json:"labor_estimate,omitempty"`
	TaxRate   *float64               `json:"tax_rate,omitempty"`
	Invoice   *InvoiceDetailResponse `json:"invoice,omitempty"`
}

// FromWorkOrder renders an order. Monetary amounts are rounded to currency
// precision here, at the presentation boundary only.
func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID: o.ID,
		CustomerDetails: CustomerInfoResponse{
			Name:    o.CustomerDetails.Name,
			Email:   o.CustomerDetails.Email,
			Phone:   o.CustomerDetails.Phone,
			Address: o.CustomerDetails.Address,
		},
		JobDescription:     o.JobDescription,
		Location:           o.Location,
		Urgency:            string(o.Urgency),
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Revision:           o.Revision,
		Deadline:           o.Deadline,
		TranscriptionNotes: o.TranscriptionNotes,
		Labor:              o.LaborEstimate,
		TaxRate:            o.TaxRate,
	}
	if o.Analysis != nil {
		resp.Analysis = &JobAnalysisResponse{
			PartList:    o.Analysis.PartList,
			JobDuration: o.Analysis.JobDuration,
			ToolsNeeded: o.Analysis.ToolsNeeded,
			ManHours:    o.Analysis.ManHours,
			AnalyzedAt:  o.Analysis.AnalyzedAt,
		}
	}
	for _, p := range o.PartCosts {
		resp.PartCosts = append(resp.PartCosts, PartCostResponse{
			PartName:  p.PartName,
			Cost:      p.Cost,
			Quantity:  p.Quantity,
			LineTotal: usecase.RoundCurrency(p.LineTotal()),
		})
	}
	if o.Invoice != nil {
		resp.Invoice = &InvoiceDetailResponse{
			Text:        o.Invoice.Text,
			TotalAmount: usecase.RoundCurrency(o.Invoice.TotalAmount),
			IssuedAt:    o.Invoice.IssuedAt,
		}
	}
	return resp
}

// FromWorkOrderList renders all orders sorted by creation time, newest first.
// The store itself keeps insertion order; display order is decided here.
func FromWorkOrderList(orders []entities.WorkOrder) []WorkOrderResponse {
	sorted := make([]entities.WorkOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	out := make([]WorkOrderResponse, 0, len(sorted))
	for _, o := range sorted {
		out = append(out, FromWorkOrder(o))
	}
	return out
}
