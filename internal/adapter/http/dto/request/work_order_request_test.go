package request

import (
	"testing"
	"time"

	"fieldflow/internal/domain/entities"
)

func TestWorkOrderCreateRequest_ResolveUrgency(t *testing.T) {
	cases := []struct {
		in   string
		want entities.Urgency
		ok   bool
	}{
		{"high", entities.UrgencyHigh, true},
		{"Low", entities.UrgencyLow, true},
		{"MEDIUM", entities.UrgencyMedium, true},
		{"asap", "", false},
	}
	for _, tc := range cases {
		r := WorkOrderCreateRequest{Urgency: tc.in}
		got, ok := r.ResolveUrgency()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ResolveUrgency(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestWorkOrderPatchRequest_ToPatch(t *testing.T) {
	t.Run("empty request maps to empty patch", func(t *testing.T) {
		patch, verr := WorkOrderPatchRequest{}.ToPatch()
		if verr != nil {
			t.Fatalf("unexpected violations: %v", verr)
		}
		if !patch.IsEmpty() {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("set fields are carried over", func(t *testing.T) {
		desc := "new description"
		urgency := "high"
		deadline := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		parts := []PartCostRequest{{PartName: "Valve", Cost: 10, Quantity: 2}}
		r := WorkOrderPatchRequest{
			JobDescription: &desc,
			Urgency:        &urgency,
			Deadline:       &deadline,
			PartCosts:      &parts,
		}

		patch, verr := r.ToPatch()
		if verr != nil {
			t.Fatalf("unexpected violations: %v", verr)
		}
		if patch.JobDescription == nil || *patch.JobDescription != desc {
			t.Fatalf("description not mapped: %+v", patch)
		}
		if patch.Urgency == nil || *patch.Urgency != entities.UrgencyHigh {
			t.Fatalf("urgency not parsed: %+v", patch)
		}
		if patch.Deadline == nil || !patch.Deadline.Equal(deadline) {
			t.Fatalf("deadline not mapped: %+v", patch)
		}
		if patch.PartCosts == nil || len(*patch.PartCosts) != 1 || (*patch.PartCosts)[0].PartName != "Valve" {
			t.Fatalf("part costs not mapped: %+v", patch)
		}
		if patch.CustomerDetails != nil || patch.Location != nil || patch.Status != nil {
			t.Fatalf("absent fields must stay nil: %+v", patch)
		}
	})

	t.Run("clear deadline flag", func(t *testing.T) {
		patch, verr := WorkOrderPatchRequest{ClearDeadline: true}.ToPatch()
		if verr != nil {
			t.Fatalf("unexpected violations: %v", verr)
		}
		if !patch.ClearDeadline {
			t.Fatal("expected clear_deadline carried over")
		}
	})

	t.Run("bad urgency rejects the whole patch", func(t *testing.T) {
		urgency := "panic"
		_, verr := WorkOrderPatchRequest{Urgency: &urgency}.ToPatch()
		if verr == nil || len(verr.Fields) != 1 || verr.Fields[0].Field != "urgency" {
			t.Fatalf("expected urgency violation, got %v", verr)
		}
	})
}
