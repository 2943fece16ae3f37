package request

import "fieldflow/internal/domain/entities"

// InvoiceRequest is the invoice-generation payload. When targeting an existing
// work order every field is optional and missing ones fall back to the order's
// stored values; for a standalone preview the use case validates that customer
// and job summary are present.
type InvoiceRequest struct {
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	JobSummary      string            `json:"job_summary"`
	PartCosts       []PartCostRequest `json:"part_costs"`
	LaborEstimate   *float64          `json:"labor_estimate"`
	TaxRate         *float64          `json:"tax_rate"`
}

func (r InvoiceRequest) Customer() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:    r.CustomerName,
		Email:   r.CustomerEmail,
		Phone:   r.CustomerPhone,
		Address: r.CustomerAddress,
	}
}

func (r InvoiceRequest) Parts() []entities.PartCost {
	if r.PartCosts == nil {
		return nil
	}
	return toPartCosts(r.PartCosts)
}
