package interfaces

import (
	"context"
	"time"

	"fieldflow/internal/domain/entities"
)

// IWorkOrderRepository abstracts the work order store.
//
// Not-found and conflict outcomes follow the conditional-write convention used
// across the repositories: the method returns a zero-value entity and a nil
// error, and the use case layer maps that to its own typed error. Only
// infrastructure failures surface as errors here.

type IWorkOrderRepository interface {
	// Create inserts the order. An existing order with the same ID is never
	// overwritten; the zero value is returned instead and the store is unchanged.
	Create(ctx context.Context, order entities.WorkOrder) (entities.WorkOrder, error)

	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)

	// List returns all orders in insertion order.
	List(ctx context.Context) ([]entities.WorkOrder, error)

	// Update merges the patch into the stored order, preserving untouched
	// fields, and returns the merged result. Missing ID or a failed
	// patch.IfRevision guard yields the zero value with the store unchanged.
	Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)

	// Remove deletes the order and reports whether it existed.
	Remove(ctx context.Context, id string) (bool, error)

	// FindByDeadlineDay returns orders whose deadline falls on the given
	// calendar day, ignoring time of day.
	FindByDeadlineDay(ctx context.Context, day time.Time) ([]entities.WorkOrder, error)

	// EventDays returns the distinct calendar days having at least one
	// deadline, deduplicated, for calendar-marker rendering.
	EventDays(ctx context.Context) ([]time.Time, error)
}
