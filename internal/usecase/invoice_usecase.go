package usecase

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"
)

// centTolerance is the largest calculator-vs-gateway total difference treated
// as rounding noise. Anything beyond it is surfaced as a warning.
const centTolerance = 0.01

// InvoiceInput carries the itemized costs used to draft an invoice. When
// generating for an existing order, nil fields default to the order's stored
// values; an explicit zero is kept as zero.

type InvoiceInput struct {
	CustomerDetails entities.CustomerInfo
	JobSummary      string
	PartCosts       []entities.PartCost
	LaborEstimate   *float64
	TaxRate         *float64
}

// InvoiceOutcome is the result of drafting an invoice. TotalAmount comes from
// the local calculator and is the source of truth; GatewayAmount is what the
// model reported. MismatchWarning is set when the two disagree beyond a cent.

type InvoiceOutcome struct {
	InvoiceText     string
	TotalAmount     float64
	GatewayAmount   float64
	MismatchWarning string
	WorkOrder       *entities.WorkOrder
}

type IInvoiceUseCase interface {
	// GenerateForWorkOrder drafts an invoice for the order, attaches it and
	// sets the status to Invoiced. Revision-guarded like the analysis merge.
	GenerateForWorkOrder(ctx context.Context, id string, in InvoiceInput) (InvoiceOutcome, error)

	// Preview drafts an invoice without touching the store.
	Preview(ctx context.Context, in InvoiceInput) (InvoiceOutcome, error)
}

type InvoiceUseCase struct {
	repo    interfaces.IWorkOrderRepository
	gateway interfaces.IAssistantGateway
	now     func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IWorkOrderRepository, gateway interfaces.IAssistantGateway) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *InvoiceUseCase) GenerateForWorkOrder(ctx context.Context, id string, in InvoiceInput) (InvoiceOutcome, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return InvoiceOutcome{}, ErrInvalidWorkOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return InvoiceOutcome{}, err
	}
	if order.ID == "" {
		return InvoiceOutcome{}, ErrWorkOrderNotFound
	}

	in = fillFromOrder(in, order)
	startRevision := order.Revision

	outcome, err := u.draft(ctx, in)
	if err != nil {
		return InvoiceOutcome{}, err
	}

	status := entities.StatusInvoiced
	invoice := entities.Invoice{
		Text:          outcome.InvoiceText,
		TotalAmount:   outcome.TotalAmount,
		GatewayAmount: outcome.GatewayAmount,
		IssuedAt:      u.now(),
	}
	labor := f64OrZero(in.LaborEstimate)
	tax := f64OrZero(in.TaxRate)
	parts := in.PartCosts
	updated, err := u.repo.Update(ctx, id, entities.WorkOrderPatch{
		PartCosts:     &parts,
		LaborEstimate: &labor,
		TaxRate:       &tax,
		Invoice:       &invoice,
		Status:        &status,
		IfRevision:    &startRevision,
	})
	if err != nil {
		return InvoiceOutcome{}, err
	}
	if updated.ID == "" {
		current, gerr := u.repo.GetByID(ctx, id)
		if gerr != nil {
			return InvoiceOutcome{}, gerr
		}
		if current.ID == "" {
			return InvoiceOutcome{}, ErrWorkOrderNotFound
		}
		log.Printf("[invoice][usecase] draft stale id=%s started_at_revision=%d current=%d", id, startRevision, current.Revision)
		return InvoiceOutcome{}, ErrStaleRevision
	}
	log.Printf("[invoice][usecase] invoice attached id=%s total=%.4f revision=%d", id, outcome.TotalAmount, updated.Revision)

	outcome.WorkOrder = &updated
	return outcome, nil
}

func (u *InvoiceUseCase) Preview(ctx context.Context, in InvoiceInput) (InvoiceOutcome, error) {
	return u.draft(ctx, in)
}

func (u *InvoiceUseCase) draft(ctx context.Context, in InvoiceInput) (InvoiceOutcome, error) {
	if u.gateway == nil {
		return InvoiceOutcome{}, ErrAssistantNotConfigured
	}

	v := &entities.ValidationError{}
	if cv := in.CustomerDetails.Validate(); cv != nil {
		v.Fields = append(v.Fields, cv.Fields...)
	}
	if strings.TrimSpace(in.JobSummary) == "" {
		v.Add("job_summary", "job summary is required")
	}
	if err := v.OrNil(); err != nil {
		return InvoiceOutcome{}, err
	}

	labor := f64OrZero(in.LaborEstimate)
	tax := f64OrZero(in.TaxRate)

	// The calculator revalidates part costs, labor and tax rate itself.
	total, err := ComputeInvoiceTotal(in.PartCosts, labor, tax)
	if err != nil {
		return InvoiceOutcome{}, err
	}

	draftParts := make([]interfaces.InvoiceDraftPart, 0, len(in.PartCosts))
	for _, p := range in.PartCosts {
		draftParts = append(draftParts, interfaces.InvoiceDraftPart{PartName: p.PartName, Cost: p.Cost, Quantity: p.Quantity})
	}
	log.Printf("[invoice][usecase] draft start parts=%d labor=%.2f tax=%.4f", len(in.PartCosts), labor, tax)
	draft, err := u.gateway.DraftInvoice(ctx, interfaces.InvoiceDraftInput{
		CustomerName:    in.CustomerDetails.Name,
		CustomerEmail:   in.CustomerDetails.Email,
		CustomerPhone:   in.CustomerDetails.Phone,
		CustomerAddress: in.CustomerDetails.Address,
		JobSummary:      in.JobSummary,
		PartCosts:       draftParts,
		LaborEstimate:   labor,
		TaxRate:         tax,
	})
	if err != nil {
		return InvoiceOutcome{}, wrapGatewayErr("draft-invoice", err)
	}

	outcome := InvoiceOutcome{
		InvoiceText:   draft.InvoiceText,
		TotalAmount:   total,
		GatewayAmount: draft.TotalAmount,
	}
	if diff := math.Abs(draft.TotalAmount - total); diff > centTolerance {
		outcome.MismatchWarning = "gateway total disagrees with the computed total; the computed total is authoritative"
		log.Printf("[invoice][usecase] total mismatch computed=%.4f gateway=%.4f diff=%.4f", total, draft.TotalAmount, diff)
	}
	return outcome, nil
}

func fillFromOrder(in InvoiceInput, order entities.WorkOrder) InvoiceInput {
	if in.CustomerDetails == (entities.CustomerInfo{}) {
		in.CustomerDetails = order.CustomerDetails
	}
	if strings.TrimSpace(in.JobSummary) == "" {
		in.JobSummary = order.JobDescription
	}
	if in.PartCosts == nil && order.PartCosts != nil {
		in.PartCosts = order.PartCosts
	}
	if in.LaborEstimate == nil && order.LaborEstimate != nil {
		l := *order.LaborEstimate
		in.LaborEstimate = &l
	}
	if in.TaxRate == nil && order.TaxRate != nil {
		r := *order.TaxRate
		in.TaxRate = &r
	}
	return in
}

func f64OrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
