package entities

import "time"

// WorkOrderPatch is a partial update: only non-nil fields are applied, every
// other field of the target order is preserved. ID and CreatedAt are never
// patchable.
//
// IfRevision, when set, makes the update conditional: a store applying the patch
// must leave the order untouched unless its current Revision matches. This is how
// asynchronous assistant results avoid overwriting edits made while the call was
// in flight.

type WorkOrderPatch struct {
	CustomerDetails    *CustomerInfo
	JobDescription     *string
	Location           *string
	Urgency            *Urgency
	Status             *string
	Deadline           *time.Time
	ClearDeadline      bool
	TranscriptionNotes *string
	Analysis           *JobAnalysis
	PartCosts          *[]PartCost
	LaborEstimate      *float64
	TaxRate            *float64
	Invoice            *Invoice

	IfRevision *int64
}

// IsEmpty reports whether applying the patch would change nothing.
func (p WorkOrderPatch) IsEmpty() bool {
	return p.CustomerDetails == nil &&
		p.JobDescription == nil &&
		p.Location == nil &&
		p.Urgency == nil &&
		p.Status == nil &&
		p.Deadline == nil &&
		!p.ClearDeadline &&
		p.TranscriptionNotes == nil &&
		p.Analysis == nil &&
		p.PartCosts == nil &&
		p.LaborEstimate == nil &&
		p.TaxRate == nil &&
		p.Invoice == nil
}

// Apply merges the patch into a copy of w and returns it. The caller is
// responsible for bumping Revision and UpdatedAt; Apply only moves field values.
func (p WorkOrderPatch) Apply(w WorkOrder) WorkOrder {
	if p.CustomerDetails != nil {
		w.CustomerDetails = *p.CustomerDetails
	}
	if p.JobDescription != nil {
		w.JobDescription = *p.JobDescription
	}
	if p.Location != nil {
		w.Location = *p.Location
	}
	if p.Urgency != nil {
		w.Urgency = *p.Urgency
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.ClearDeadline {
		w.Deadline = nil
	} else if p.Deadline != nil {
		d := *p.Deadline
		w.Deadline = &d
	}
	if p.TranscriptionNotes != nil {
		w.TranscriptionNotes = *p.TranscriptionNotes
	}
	if p.Analysis != nil {
		a := *p.Analysis
		w.Analysis = &a
	}
	if p.PartCosts != nil {
		costs := make([]PartCost, len(*p.PartCosts))
		copy(costs, *p.PartCosts)
		w.PartCosts = costs
	}
	if p.LaborEstimate != nil {
		l := *p.LaborEstimate
		w.LaborEstimate = &l
	}
	if p.TaxRate != nil {
		t := *p.TaxRate
		w.TaxRate = &t
	}
	if p.Invoice != nil {
		inv := *p.Invoice
		w.Invoice = &inv
	}
	return w
}
