package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"
)

// ErrCorruptSnapshot signals that the persisted collection could not be
// decoded. It is surfaced to the caller instead of being swallowed into an
// empty collection, so the operator decides between resetting and aborting.
var ErrCorruptSnapshot = errors.New("corrupt work order snapshot")

// WorkOrderMemoryRepository keeps the whole collection in memory and rewrites
// a full snapshot through the injected backend on every mutation. Collections
// are small (tens to low hundreds of orders), so whole-collection persistence
// is acceptable.
//
// Mutations are atomic with respect to persistence: if the backend save fails,
// the in-memory change is rolled back and the error returned.

type WorkOrderMemoryRepository struct {
	mu      sync.Mutex
	orders  []entities.WorkOrder
	index   map[string]int
	backend interfaces.ISnapshotBackend
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderMemoryRepository)(nil)

// NewWorkOrderMemoryRepository hydrates the repository from the backend's
// snapshot. A corrupt snapshot returns an error wrapping ErrCorruptSnapshot;
// an empty or never-written slot yields an empty repository.
func NewWorkOrderMemoryRepository(ctx context.Context, backend interfaces.ISnapshotBackend) (*WorkOrderMemoryRepository, error) {
	if backend == nil {
		backend = NullSnapshotBackend{}
	}
	r := &WorkOrderMemoryRepository{
		index:   make(map[string]int),
		backend: backend,
	}

	payload, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if len(payload) == 0 {
		return r, nil
	}

	orders, err := DecodeSnapshot(payload)
	if err != nil {
		return nil, err
	}
	r.orders = orders
	for i, o := range orders {
		r.index[o.ID] = i
	}
	return r, nil
}

// EncodeSnapshot serializes the collection as a JSON array. Timestamps are
// RFC 3339 strings; absent optional fields are omitted entirely so the
// round-trip keeps "never set" distinct from "set to zero".
func EncodeSnapshot(orders []entities.WorkOrder) ([]byte, error) {
	if orders == nil {
		orders = []entities.WorkOrder{}
	}
	return json.Marshal(orders)
}

func DecodeSnapshot(payload []byte) ([]entities.WorkOrder, error) {
	var orders []entities.WorkOrder
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return orders, nil
}

func (r *WorkOrderMemoryRepository) Create(ctx context.Context, order entities.WorkOrder) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[order.ID]; exists {
		return entities.WorkOrder{}, nil
	}

	r.orders = append(r.orders, cloneOrder(order))
	r.index[order.ID] = len(r.orders) - 1

	if err := r.persist(ctx); err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		delete(r.index, order.ID)
		return entities.WorkOrder{}, err
	}
	return cloneOrder(order), nil
}

func (r *WorkOrderMemoryRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	return cloneOrder(r.orders[i]), nil
}

func (r *WorkOrderMemoryRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.WorkOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *WorkOrderMemoryRepository) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	prev := r.orders[i]
	if patch.IfRevision != nil && prev.Revision != *patch.IfRevision {
		return entities.WorkOrder{}, nil
	}

	merged := patch.Apply(prev)
	merged.ID = prev.ID
	merged.CreatedAt = prev.CreatedAt
	if !patch.IsEmpty() {
		merged.Revision = prev.Revision + 1
		merged.UpdatedAt = time.Now().UTC()
	}
	r.orders[i] = merged

	if err := r.persist(ctx); err != nil {
		r.orders[i] = prev
		return entities.WorkOrder{}, err
	}
	return cloneOrder(merged), nil
}

func (r *WorkOrderMemoryRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false, nil
	}

	prevOrders := r.orders
	removed := prevOrders[i]
	r.orders = append(append([]entities.WorkOrder{}, prevOrders[:i]...), prevOrders[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.orders); j++ {
		r.index[r.orders[j].ID] = j
	}

	if err := r.persist(ctx); err != nil {
		r.orders = prevOrders
		r.index[removed.ID] = i
		for j := i + 1; j < len(prevOrders); j++ {
			r.index[prevOrders[j].ID] = j
		}
		return false, err
	}
	return true, nil
}

func (r *WorkOrderMemoryRepository) FindByDeadlineDay(ctx context.Context, day time.Time) ([]entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.WorkOrder
	for _, o := range r.orders {
		if o.DeadlineOn(day) {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *WorkOrderMemoryRepository) EventDays(ctx context.Context) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[time.Time]bool)
	var out []time.Time
	for _, o := range r.orders {
		if o.Deadline == nil {
			continue
		}
		day := entities.TruncateToDay(*o.Deadline)
		if !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	return out, nil
}

func (r *WorkOrderMemoryRepository) persist(ctx context.Context) error {
	payload, err := EncodeSnapshot(r.orders)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.backend.Save(ctx, payload); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// cloneOrder deep-copies the aggregate so callers never alias internal state.
func cloneOrder(o entities.WorkOrder) entities.WorkOrder {
	out := o
	if o.Deadline != nil {
		d := *o.Deadline
		out.Deadline = &d
	}
	if o.Analysis != nil {
		a := *o.Analysis
		out.Analysis = &a
	}
	if o.PartCosts != nil {
		costs := make([]entities.PartCost, len(o.PartCosts))
		copy(costs, o.PartCosts)
		out.PartCosts = costs
	}
	if o.LaborEstimate != nil {
		l := *o.LaborEstimate
		out.LaborEstimate = &l
	}
	if o.TaxRate != nil {
		t := *o.TaxRate
		out.TaxRate = &t
	}
	if o.Invoice != nil {
		inv := *o.Invoice
		out.Invoice = &inv
	}
	return out
}
