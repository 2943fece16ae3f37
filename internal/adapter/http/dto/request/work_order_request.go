package request

import (
	"time"

	"fieldflow/internal/domain/entities"
)

type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (r CustomerInfoRequest) ToEntity() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

type PartCostRequest struct {
	PartName string  `json:"part_name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

func toPartCosts(parts []PartCostRequest) []entities.PartCost {
	out := make([]entities.PartCost, 0, len(parts))
	for _, p := range parts {
		out = append(out, entities.PartCost{PartName: p.PartName, Cost: p.Cost, Quantity: p.Quantity})
	}
	return out
}

// WorkOrderCreateRequest is the form-submit payload for a new work order.
type WorkOrderCreateRequest struct {
	CustomerDetails    CustomerInfoRequest `json:"customer_details" binding:"required"`
	JobDescription     string              `json:"job_description" binding:"required"`
	Location           string              `json:"location" binding:"required"`
	Urgency            string              `json:"urgency" binding:"required"`
	Deadline           *time.Time          `json:"deadline"`
	TranscriptionNotes string              `json:"transcription_notes"`
}

// ResolveUrgency parses the urgency label leniently on case.
func (r WorkOrderCreateRequest) ResolveUrgency() (entities.Urgency, bool) {
	return entities.ParseUrgency(r.Urgency)
}

// WorkOrderPatchRequest is a partial update: only fields present in the JSON
// body are applied. clear_deadline removes an existing deadline, since JSON
// null and absent are indistinguishable on a *time.Time.
type WorkOrderPatchRequest struct {
	CustomerDetails    *CustomerInfoRequest `json:"customer_details"`
	JobDescription     *string              `json:"job_description"`
	Location           *string              `json:"location"`
	Urgency            *string              `json:"urgency"`
	Status             *string              `json:"status"`
	Deadline           *time.Time           `json:"deadline"`
	ClearDeadline      bool                 `json:"clear_deadline"`
	TranscriptionNotes *string              `json:"transcription_notes"`
	PartCosts          *[]PartCostRequest   `json:"part_costs"`
	LaborEstimate      *float64             `json:"labor_estimate"`
	TaxRate            *float64             `json:"tax_rate"`
}

// ToPatch maps the request onto the domain patch. Urgency is the only field
// needing parse-level validation here; everything else is validated by the
// use case.
func (r WorkOrderPatchRequest) ToPatch() (entities.WorkOrderPatch, *entities.ValidationError) {
	patch := entities.WorkOrderPatch{
		JobDescription:     r.JobDescription,
		Location:           r.Location,
		Status:             r.Status,
		Deadline:           r.Deadline,
		ClearDeadline:      r.ClearDeadline,
		TranscriptionNotes: r.TranscriptionNotes,
		LaborEstimate:      r.LaborEstimate,
		TaxRate:            r.TaxRate,
	}
	if r.CustomerDetails != nil {
		c := r.CustomerDetails.ToEntity()
		patch.CustomerDetails = &c
	}
	if r.Urgency != nil {
		u, ok := entities.ParseUrgency(*r.Urgency)
		if !ok {
			v := &entities.ValidationError{}
			v.Add("urgency", "urgency must be Low, Medium or High")
			return entities.WorkOrderPatch{}, v
		}
		patch.Urgency = &u
	}
	if r.PartCosts != nil {
		costs := toPartCosts(*r.PartCosts)
		patch.PartCosts = &costs
	}
	return patch, nil
}
