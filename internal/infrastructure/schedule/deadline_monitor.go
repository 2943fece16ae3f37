package schedule

import (
	"context"
	"log"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"

	"github.com/robfig/cron/v3"
)

const (
	defaultCronSpec     = "0 8 * * *"
	defaultHorizonHours = 48
)

// DeadlineMonitor periodically scans work orders and, for orders that are not
// yet invoiced and have a deadline inside the horizon, asks the coordinator
// contract for a proactive action. Advisory only: results are logged, no work
// order is mutated.

type DeadlineMonitor struct {
	orders    usecase.IWorkOrderUseCase
	assistant usecase.IAssistantUseCase
	cron      *cron.Cron
	spec      string
	horizon   time.Duration
}

func NewDeadlineMonitor(orders usecase.IWorkOrderUseCase, assistant usecase.IAssistantUseCase, spec string, horizon time.Duration) *DeadlineMonitor {
	if spec == "" {
		spec = defaultCronSpec
	}
	if horizon <= 0 {
		horizon = defaultHorizonHours * time.Hour
	}
	return &DeadlineMonitor{
		orders:    orders,
		assistant: assistant,
		cron:      cron.New(),
		spec:      spec,
		horizon:   horizon,
	}
}

func (m *DeadlineMonitor) Start() error {
	_, err := m.cron.AddFunc(m.spec, func() {
		m.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	m.cron.Start()
	log.Printf("[schedule][deadline] monitor started spec=%q horizon=%s", m.spec, m.horizon)
	return nil
}

func (m *DeadlineMonitor) Stop() {
	m.cron.Stop()
}

// RunOnce is one scan pass; exposed separately so it can be triggered and
// tested without the cron schedule.
func (m *DeadlineMonitor) RunOnce(ctx context.Context) {
	orders, err := m.orders.List(ctx)
	if err != nil {
		log.Printf("[schedule][deadline] list failed err=%v", err)
		return
	}

	now := time.Now().UTC()
	checked := 0
	for _, order := range orders {
		if !m.needsAttention(order, now) {
			continue
		}
		checked++
		result, err := m.assistant.CoordinateWorkOrder(ctx, order.ID)
		if err != nil {
			log.Printf("[schedule][deadline] coordinate failed id=%s err=%v", order.ID, err)
			continue
		}
		log.Printf("[schedule][deadline] advised id=%s deadline=%s action=%q reason=%q",
			order.ID, order.Deadline.Format(time.RFC3339), result.ActionTaken, result.Reason)
	}
	log.Printf("[schedule][deadline] scan done orders=%d flagged=%d", len(orders), checked)
}

func (m *DeadlineMonitor) needsAttention(order entities.WorkOrder, now time.Time) bool {
	if order.Deadline == nil || order.Status == entities.StatusInvoiced {
		return false
	}
	return order.Deadline.Sub(now) <= m.horizon
}
