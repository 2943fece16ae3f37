package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldflow/internal/adapter/http/handlers/mocks"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestDeadlineMonitor_RunOnce(t *testing.T) {
	now := time.Now().UTC()
	soon := now.Add(12 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)
	missed := now.Add(-time.Hour)

	t.Run("flags only orders inside the horizon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIWorkOrderUseCase(ctrl)
		assistant := mocks.NewMockIAssistantUseCase(ctrl)

		orders.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "wo-soon", Status: entities.StatusNew, Deadline: &soon},
			{ID: "wo-far", Status: entities.StatusNew, Deadline: &far},
			{ID: "wo-missed", Status: entities.StatusAnalyzed, Deadline: &missed},
			{ID: "wo-none", Status: entities.StatusNew},
			{ID: "wo-done", Status: entities.StatusInvoiced, Deadline: &soon},
		}, nil)
		assistant.EXPECT().CoordinateWorkOrder(gomock.Any(), "wo-soon").
			Return(interfaces.CoordinationResult{ActionTaken: "notify"}, nil)
		assistant.EXPECT().CoordinateWorkOrder(gomock.Any(), "wo-missed").
			Return(interfaces.CoordinationResult{ActionTaken: "escalate"}, nil)

		m := NewDeadlineMonitor(orders, assistant, "", 0)
		m.RunOnce(context.Background())
	})

	t.Run("coordination failure does not stop the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIWorkOrderUseCase(ctrl)
		assistant := mocks.NewMockIAssistantUseCase(ctrl)

		orders.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "wo-1", Status: entities.StatusNew, Deadline: &soon},
			{ID: "wo-2", Status: entities.StatusNew, Deadline: &soon},
		}, nil)
		assistant.EXPECT().CoordinateWorkOrder(gomock.Any(), "wo-1").
			Return(interfaces.CoordinationResult{}, errors.New("boom"))
		assistant.EXPECT().CoordinateWorkOrder(gomock.Any(), "wo-2").
			Return(interfaces.CoordinationResult{ActionTaken: "notify"}, nil)

		m := NewDeadlineMonitor(orders, assistant, "", 0)
		m.RunOnce(context.Background())
	})

	t.Run("list failure aborts quietly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIWorkOrderUseCase(ctrl)
		assistant := mocks.NewMockIAssistantUseCase(ctrl)

		orders.EXPECT().List(gomock.Any()).Return(nil, errors.New("store down"))

		m := NewDeadlineMonitor(orders, assistant, "", 0)
		m.RunOnce(context.Background())
	})
}

func TestNewDeadlineMonitor_Defaults(t *testing.T) {
	m := NewDeadlineMonitor(nil, nil, "", 0)
	if m.spec != defaultCronSpec {
		t.Fatalf("expected default spec, got %q", m.spec)
	}
	if m.horizon != defaultHorizonHours*time.Hour {
		t.Fatalf("expected default horizon, got %s", m.horizon)
	}

	m = NewDeadlineMonitor(nil, nil, "@hourly", 2*time.Hour)
	if m.spec != "@hourly" || m.horizon != 2*time.Hour {
		t.Fatalf("overrides not applied: %q %s", m.spec, m.horizon)
	}
}
