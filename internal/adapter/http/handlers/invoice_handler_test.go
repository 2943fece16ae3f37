package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldflow/internal/adapter/http/handlers/mocks"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validInvoiceBody = `{
	"customer_details": {"name":"Jane","email":"jane@example.com","phone":"555-0100","address":"1 Main St"},
	"job_summary": "Heater repair",
	"part_costs": [{"part_name":"Valve","cost":10,"quantity":2}],
	"labor_estimate": 50,
	"tax_rate": 0.08
}`

func TestInvoiceHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/preview", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards the itemized input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.InvoiceInput) (usecase.InvoiceOutcome, error) {
				if in.CustomerDetails.Name != "Jane" || in.JobSummary != "Heater repair" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.PartCosts) != 1 {
					t.Fatalf("unexpected cost input: %+v", in)
				}
				if in.LaborEstimate == nil || *in.LaborEstimate != 50 || in.TaxRate == nil || *in.TaxRate != 0.08 {
					t.Fatalf("unexpected labor/tax input: %+v", in)
				}
				return usecase.InvoiceOutcome{InvoiceText: "INVOICE ...", TotalAmount: 75.6, GatewayAmount: 75.6}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/invoices/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/preview", bytes.NewBufferString(validInvoiceBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			InvoiceText string  `json:"invoice_text"`
			TotalAmount float64 `json:"total_amount"`
			Warning     string  `json:"warning"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.InvoiceText == "" || resp.TotalAmount != 75.6 || resp.Warning != "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("warning is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(usecase.InvoiceOutcome{
			InvoiceText:     "INVOICE ...",
			TotalAmount:     75.6,
			GatewayAmount:   99.99,
			MismatchWarning: "gateway total disagrees with the computed total; the computed total is authoritative",
		}, nil)

		r := gin.New()
		r.POST("/v1/invoices/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/preview", bytes.NewBufferString(validInvoiceBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp struct {
			Warning       string  `json:"warning"`
			GatewayAmount float64 `json:"gateway_amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Warning == "" || resp.GatewayAmount != 99.99 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_GenerateForWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		uc.EXPECT().GenerateForWorkOrder(gomock.Any(), "wo-404", gomock.Any()).
			Return(usecase.InvoiceOutcome{}, usecase.ErrWorkOrderNotFound)

		r := gin.New()
		r.POST("/v1/work-orders/:id/invoice", h.GenerateForWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-404/invoice", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("empty body relies on stored fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GenerateForWorkOrder(gomock.Any(), "wo-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.InvoiceInput) (usecase.InvoiceOutcome, error) {
				if in.CustomerDetails != (entities.CustomerInfo{}) || in.JobSummary != "" {
					t.Fatalf("expected blank input so the order fills it, got %+v", in)
				}
				if in.LaborEstimate != nil || in.TaxRate != nil {
					t.Fatalf("absent labor/tax must stay nil, got %+v", in)
				}
				order := entities.WorkOrder{ID: "wo-1", Status: entities.StatusInvoiced, Revision: 3}
				return usecase.InvoiceOutcome{InvoiceText: "INVOICE ...", TotalAmount: 75.6, GatewayAmount: 75.6, WorkOrder: &order}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/work-orders/:id/invoice", h.GenerateForWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/invoice", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			WorkOrder *struct {
				Status string `json:"status"`
			} `json:"work_order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.WorkOrder == nil || resp.WorkOrder.Status != entities.StatusInvoiced {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("stale revision maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		uc.EXPECT().GenerateForWorkOrder(gomock.Any(), "wo-1", gomock.Any()).
			Return(usecase.InvoiceOutcome{}, usecase.ErrStaleRevision)

		r := gin.New()
		r.POST("/v1/work-orders/:id/invoice", h.GenerateForWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/invoice", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
