package entities

import "time"

// Urgency is the priority classification of a work order.

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Well-known status labels. Status is deliberately a free-form string: any
// component may set it and no state machine is enforced.
const (
	StatusNew       = "New"
	StatusAnalyzed  = "Analyzed"
	StatusInvoiced  = "Invoiced"
	StatusScheduled = "Scheduled"
)

// CustomerInfo identifies the customer a work order is performed for.

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PartCost is one itemized line on an invoice: a part, its unit cost and the
// quantity used.

type PartCost struct {
	PartName string  `json:"part_name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

func (p PartCost) LineTotal() float64 {
	return p.Cost * float64(p.Quantity)
}

// JobAnalysis holds the assistant's estimate for a job. All fields are free-form
// descriptive text from the model; nothing here is assumed to parse as a number.
// A nil *JobAnalysis on the work order means "not yet analyzed", which is distinct
// from an analysis with empty results.

type JobAnalysis struct {
	PartList    string    `json:"part_list"`
	JobDuration string    `json:"job_duration"`
	ToolsNeeded string    `json:"tools_needed"`
	ManHours    string    `json:"man_hours"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
}

// Invoice holds the drafted invoice attached to a work order once invoicing
// completes. TotalAmount is the locally computed total at full precision;
// GatewayAmount is what the drafting model reported, kept for cross-checking.

type Invoice struct {
	Text          string    `json:"text"`
	TotalAmount   float64   `json:"total_amount"`
	GatewayAmount float64   `json:"gateway_amount"`
	IssuedAt      time.Time `json:"issued_at"`
}

// WorkOrder is the aggregate root for a unit of field-service work tracked
// through creation, analysis and invoicing.
//
// Immutability rules:
//   - ID is assigned at creation and never changes.
//   - CreatedAt is fixed at creation and never changes.
//
// Revision is bumped on every mutation and acts as a request-lifecycle token:
// asynchronous assistant results are merged back only if the order has not been
// edited since the call started, so stale responses are discarded instead of
// clobbering newer edits.

type WorkOrder struct {
	ID              string       `json:"id"`
	CustomerDetails CustomerInfo `json:"customer_details"`
	JobDescription  string       `json:"job_description"`
	Location        string       `json:"location"`
	Urgency         Urgency      `json:"urgency"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Revision        int64        `json:"revision"`

	Deadline           *time.Time `json:"deadline,omitempty"`
	TranscriptionNotes string     `json:"transcription_notes,omitempty"`

	Analysis *JobAnalysis `json:"analysis,omitempty"`

	PartCosts     []PartCost `json:"part_costs,omitempty"`
	LaborEstimate *float64   `json:"labor_estimate,omitempty"`
	TaxRate       *float64   `json:"tax_rate,omitempty"`

	Invoice *Invoice `json:"invoice,omitempty"`
}

// DeadlineOn reports whether the order's deadline falls on the given calendar
// day. Both sides are normalized to UTC before comparing at day granularity, so
// the time-of-day component never matters.
func (w WorkOrder) DeadlineOn(day time.Time) bool {
	if w.Deadline == nil {
		return false
	}
	return SameCalendarDay(*w.Deadline, day)
}

func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// TruncateToDay drops the time-of-day component, keeping the UTC calendar date.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
