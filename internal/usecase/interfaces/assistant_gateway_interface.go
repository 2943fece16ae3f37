package interfaces

import "context"

// UnknownField is the marker the transcription contract uses for anything the
// model could not determine. Fields are never omitted, only marked unknown.
const UnknownField = "unknown"

// TranscriptionResult is the structured extraction from an audio work order
// request. Every field is best-effort free text.

type TranscriptionResult struct {
	CustomerDetails string `json:"customer_details"`
	JobDescription  string `json:"job_description"`
	Urgency         string `json:"urgency"`
	Location        string `json:"location"`
}

type AnalysisInput struct {
	JobDescription  string `json:"job_description"`
	CustomerDetails string `json:"customer_details"`
	Urgency         string `json:"urgency"`
	Location        string `json:"location"`
}

// AnalysisResult carries the assistant's job estimate. All fields are free-form
// descriptive strings; callers must not assume numeric parseability.

type AnalysisResult struct {
	PartList            string `json:"part_list"`
	JobDurationEstimate string `json:"job_duration_estimate"`
	UrgencyLevel        string `json:"urgency_level"`
	ToolsNeeded         string `json:"tools_needed"`
	ManHoursNeeded      string `json:"man_hours_needed"`
}

type InvoiceDraftPart struct {
	PartName string  `json:"part_name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

type InvoiceDraftInput struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	JobSummary      string             `json:"job_summary"`
	PartCosts       []InvoiceDraftPart `json:"part_costs"`
	LaborEstimate   float64            `json:"labor_estimate"`
	TaxRate         float64            `json:"tax_rate"`
}

// InvoiceDraft is the model-written invoice. TotalAmount is authoritative for
// display only; the local calculator remains the source of truth and
// cross-checks it.

type InvoiceDraft struct {
	InvoiceText string  `json:"invoice_text"`
	TotalAmount float64 `json:"total_amount"`
}

type CoordinationInput struct {
	JobStatus        string `json:"job_status"`
	PartsOrderStatus string `json:"parts_order_status"`
	EmailStatus      string `json:"email_status"`
	PaymentStatus    string `json:"payment_status"`
	DeadlineStatus   string `json:"deadline_status"`
}

type CoordinationResult struct {
	ActionTaken string `json:"action_taken"`
	Reason      string `json:"reason"`
}

// IAssistantGateway abstracts the generative-AI backend. All calls are
// synchronous from the caller's perspective but bounded by the context; a
// failed, timed-out or schema-invalid call returns an error and callers must
// not mutate any work order in that case.

type IAssistantGateway interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (TranscriptionResult, error)
	Analyze(ctx context.Context, in AnalysisInput) (AnalysisResult, error)
	DraftInvoice(ctx context.Context, in InvoiceDraftInput) (InvoiceDraft, error)
	Coordinate(ctx context.Context, in CoordinationInput) (CoordinationResult, error)
}
