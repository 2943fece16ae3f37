package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrDuplicateWorkOrder = errors.New("work order id already exists")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrStaleRevision      = errors.New("work order changed while the operation was in flight")
)

// IWorkOrderUseCase exposes the work order lifecycle operations consumed by the
// HTTP surface and the deadline monitor.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	Remove(ctx context.Context, id string) error
	FindByDeadlineDay(ctx context.Context, day time.Time) ([]entities.WorkOrder, error)
	EventDays(ctx context.Context) ([]time.Time, error)
}

// CreateWorkOrderInput carries the caller-supplied fields for a new order.
// ID, CreatedAt, Status and Revision are assigned here, never by the caller.

type CreateWorkOrderInput struct {
	CustomerDetails    entities.CustomerInfo
	JobDescription     string
	Location           string
	Urgency            entities.Urgency
	Deadline           *time.Time
	TranscriptionNotes string
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	now := time.Now().UTC()
	order := entities.WorkOrder{
		ID:                 uuid.NewString(),
		CustomerDetails:    in.CustomerDetails,
		JobDescription:     strings.TrimSpace(in.JobDescription),
		Location:           strings.TrimSpace(in.Location),
		Urgency:            in.Urgency,
		Status:             entities.StatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
		Revision:           1,
		TranscriptionNotes: in.TranscriptionNotes,
	}
	if in.Deadline != nil {
		d := in.Deadline.UTC()
		order.Deadline = &d
	}
	if err := order.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if created.ID == "" {
		// uuid collision is not a realistic path; this guards programmatic reuse
		// of the repository with caller-chosen IDs.
		return entities.WorkOrder{}, ErrDuplicateWorkOrder
	}
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
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
	return order, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

func (u *WorkOrderUseCase) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if patch.CustomerDetails != nil {
		if err := patch.CustomerDetails.Validate(); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if patch.JobDescription != nil || patch.Location != nil {
		v := &entities.ValidationError{}
		if patch.JobDescription != nil && strings.TrimSpace(*patch.JobDescription) == "" {
			v.Add("job_description", "job description is required")
		}
		if patch.Location != nil && strings.TrimSpace(*patch.Location) == "" {
			v.Add("location", "location is required")
		}
		if err := v.OrNil(); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if patch.PartCosts != nil {
		v := &entities.ValidationError{}
		for i, p := range *patch.PartCosts {
			p.ValidateAt(partCostField(i), v)
		}
		if err := v.OrNil(); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if patch.TaxRate != nil && (*patch.TaxRate < 0 || *patch.TaxRate > 1) {
		v := &entities.ValidationError{}
		v.Add("tax_rate", "tax rate must be between 0 and 1")
		return entities.WorkOrder{}, v
	}
	if patch.LaborEstimate != nil && *patch.LaborEstimate < 0 {
		v := &entities.ValidationError{}
		v.Add("labor_estimate", "labor estimate must be non-negative")
		return entities.WorkOrder{}, v
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, u.resolveConditionalMiss(ctx, id, patch)
	}
	return updated, nil
}

func (u *WorkOrderUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkOrderID
	}
	existed, err := u.repo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrWorkOrderNotFound
	}
	return nil
}

func (u *WorkOrderUseCase) FindByDeadlineDay(ctx context.Context, day time.Time) ([]entities.WorkOrder, error) {
	return u.repo.FindByDeadlineDay(ctx, day)
}

func (u *WorkOrderUseCase) EventDays(ctx context.Context) ([]time.Time, error) {
	return u.repo.EventDays(ctx)
}

// resolveConditionalMiss disambiguates a zero-value update result: the order is
// either gone (not found) or still there with a newer revision (stale guard).
func (u *WorkOrderUseCase) resolveConditionalMiss(ctx context.Context, id string, patch entities.WorkOrderPatch) error {
	if patch.IfRevision == nil {
		return ErrWorkOrderNotFound
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrWorkOrderNotFound
	}
	return ErrStaleRevision
}

func partCostField(i int) string {
	return fmt.Sprintf("part_costs[%d]", i)
}
