package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"
)

var (
	ErrAssistantGateway        = errors.New("assistant gateway call failed")
	ErrAssistantGatewayTimeout = errors.New("assistant gateway call timed out")
	ErrAssistantNotConfigured  = errors.New("assistant gateway not configured")
)

// IAssistantUseCase drives the generative-AI steps of the work order lifecycle.
//
// All three operations share the same failure policy: a call that fails, times
// out or returns a schema-invalid payload leaves every work order untouched.

type IAssistantUseCase interface {
	// TranscribeWorkOrder extracts draft work order fields from an audio
	// recording. It never writes to the store; the caller reviews the draft
	// and submits a create request separately.
	TranscribeWorkOrder(ctx context.Context, audio []byte, mimeType string) (interfaces.TranscriptionResult, error)

	// AnalyzeWorkOrder runs the job analysis for the order and merges the
	// result, advancing the status to Analyzed. The merge is revision-guarded:
	// if the order was edited while the call was in flight the result is
	// discarded and ErrStaleRevision is returned.
	AnalyzeWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error)

	// CoordinateWorkOrder asks the coordinator contract for a proactive action
	// given the order's subsystem statuses. Advisory only; no store writes.
	CoordinateWorkOrder(ctx context.Context, id string) (interfaces.CoordinationResult, error)
}

type AssistantUseCase struct {
	repo    interfaces.IWorkOrderRepository
	gateway interfaces.IAssistantGateway
	now     func() time.Time
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(repo interfaces.IWorkOrderRepository, gateway interfaces.IAssistantGateway) *AssistantUseCase {
	return &AssistantUseCase{repo: repo, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *AssistantUseCase) TranscribeWorkOrder(ctx context.Context, audio []byte, mimeType string) (interfaces.TranscriptionResult, error) {
	if u.gateway == nil {
		return interfaces.TranscriptionResult{}, ErrAssistantNotConfigured
	}
	if len(audio) == 0 {
		v := &entities.ValidationError{}
		v.Add("audio", "audio payload is required")
		return interfaces.TranscriptionResult{}, v
	}

	log.Printf("[assistant][usecase] transcribe start mime=%s bytes=%d", mimeType, len(audio))
	result, err := u.gateway.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return interfaces.TranscriptionResult{}, wrapGatewayErr("transcribe", err)
	}
	return result, nil
}

func (u *AssistantUseCase) AnalyzeWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	if u.gateway == nil {
		return entities.WorkOrder{}, ErrAssistantNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	// Captured before the call; the merge below only applies if the order is
	// still at this revision when the response arrives.
	startRevision := order.Revision

	log.Printf("[assistant][usecase] analyze start id=%s revision=%d", id, startRevision)
	result, err := u.gateway.Analyze(ctx, interfaces.AnalysisInput{
		JobDescription:  order.JobDescription,
		CustomerDetails: formatCustomer(order.CustomerDetails),
		Urgency:         string(order.Urgency),
		Location:        order.Location,
	})
	if err != nil {
		return entities.WorkOrder{}, wrapGatewayErr("analyze", err)
	}

	status := entities.StatusAnalyzed
	analysis := entities.JobAnalysis{
		PartList:    result.PartList,
		JobDuration: result.JobDurationEstimate,
		ToolsNeeded: result.ToolsNeeded,
		ManHours:    result.ManHoursNeeded,
		AnalyzedAt:  u.now(),
	}
	updated, err := u.repo.Update(ctx, id, entities.WorkOrderPatch{
		Analysis:   &analysis,
		Status:     &status,
		IfRevision: &startRevision,
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		current, gerr := u.repo.GetByID(ctx, id)
		if gerr != nil {
			return entities.WorkOrder{}, gerr
		}
		if current.ID == "" {
			return entities.WorkOrder{}, ErrWorkOrderNotFound
		}
		log.Printf("[assistant][usecase] analyze result stale id=%s started_at_revision=%d current=%d", id, startRevision, current.Revision)
		return entities.WorkOrder{}, ErrStaleRevision
	}
	log.Printf("[assistant][usecase] analyze merged id=%s revision=%d", id, updated.Revision)
	return updated, nil
}

func (u *AssistantUseCase) CoordinateWorkOrder(ctx context.Context, id string) (interfaces.CoordinationResult, error) {
	if u.gateway == nil {
		return interfaces.CoordinationResult{}, ErrAssistantNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return interfaces.CoordinationResult{}, ErrInvalidWorkOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return interfaces.CoordinationResult{}, err
	}
	if order.ID == "" {
		return interfaces.CoordinationResult{}, ErrWorkOrderNotFound
	}

	in := CoordinationInputForOrder(order, u.now())
	log.Printf("[assistant][usecase] coordinate start id=%s deadline_status=%s", id, in.DeadlineStatus)
	result, err := u.gateway.Coordinate(ctx, in)
	if err != nil {
		return interfaces.CoordinationResult{}, wrapGatewayErr("coordinate", err)
	}
	return result, nil
}

// CoordinationInputForOrder summarizes the order's subsystem statuses for the
// coordinator contract. Exported so the deadline monitor can reuse it.
func CoordinationInputForOrder(order entities.WorkOrder, now time.Time) interfaces.CoordinationInput {
	in := interfaces.CoordinationInput{
		JobStatus:        order.Status,
		PartsOrderStatus: "no analysis yet",
		EmailStatus:      "not configured",
		PaymentStatus:    "pending",
		DeadlineStatus:   "no deadline set",
	}
	if order.Analysis != nil {
		in.PartsOrderStatus = "parts identified: " + order.Analysis.PartList
	}
	if order.Invoice != nil {
		in.PaymentStatus = "invoiced"
	}
	if order.Deadline != nil {
		switch {
		case order.Deadline.Before(now):
			in.DeadlineStatus = "missed"
		case order.Deadline.Sub(now) <= 48*time.Hour:
			in.DeadlineStatus = "approaching"
		default:
			in.DeadlineStatus = "on schedule"
		}
	}
	return in
}

func wrapGatewayErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("[assistant][usecase] %s timeout err=%v", op, err)
		return fmt.Errorf("%w: %v", ErrAssistantGatewayTimeout, err)
	}
	log.Printf("[assistant][usecase] %s failed err=%v", op, err)
	return fmt.Errorf("%w: %v", ErrAssistantGateway, err)
}

func formatCustomer(c entities.CustomerInfo) string {
	return fmt.Sprintf("%s <%s>, %s, %s", c.Name, c.Email, c.Phone, c.Address)
}
