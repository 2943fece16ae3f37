package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldflow/internal/adapter/http/handlers/mocks"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"
	"fieldflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssistantHandler_Transcribe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing audio field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/v1/assistant/transcriptions", h.Transcribe)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/transcriptions", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed data URI", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/v1/assistant/transcriptions", h.Transcribe)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/transcriptions", bytes.NewBufferString(`{"audio_data_uri":"not-a-data-uri"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		uc.EXPECT().TranscribeWorkOrder(gomock.Any(), gomock.Any(), "audio/webm").
			Return(interfaces.TranscriptionResult{}, usecase.ErrAssistantGateway)

		r := gin.New()
		r.POST("/v1/assistant/transcriptions", h.Transcribe)

		uri := "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte("audio"))
		body, _ := json.Marshal(map[string]string{"audio_data_uri": uri})
		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/transcriptions", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		uc.EXPECT().TranscribeWorkOrder(gomock.Any(), []byte("audio"), "audio/webm").Return(interfaces.TranscriptionResult{
			CustomerDetails: "Jane Doe",
			JobDescription:  "Heater repair",
			Urgency:         "High",
			Location:        interfaces.UnknownField,
		}, nil)

		r := gin.New()
		r.POST("/v1/assistant/transcriptions", h.Transcribe)

		uri := "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte("audio"))
		body, _ := json.Marshal(map[string]string{"audio_data_uri": uri})
		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/transcriptions", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Location string `json:"location"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Location != interfaces.UnknownField {
			t.Fatalf("expected unknown marker, got %q", resp.Location)
		}
	})
}

func TestAssistantHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("timeout maps to gateway timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)
		uc.EXPECT().AnalyzeWorkOrder(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, usecase.ErrAssistantGatewayTimeout)

		r := gin.New()
		r.POST("/v1/work-orders/:id/analysis", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("stale revision maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)
		uc.EXPECT().AnalyzeWorkOrder(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, usecase.ErrStaleRevision)

		r := gin.New()
		r.POST("/v1/work-orders/:id/analysis", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the analyzed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		uc.EXPECT().AnalyzeWorkOrder(gomock.Any(), "wo-1").DoAndReturn(
			func(_ context.Context, id string) (entities.WorkOrder, error) {
				return entities.WorkOrder{
					ID:       id,
					Status:   entities.StatusAnalyzed,
					Analysis: &entities.JobAnalysis{PartList: "valve"},
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/work-orders/:id/analysis", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Status   string `json:"status"`
			Analysis *struct {
				PartList string `json:"part_list"`
			} `json:"analysis"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Status != entities.StatusAnalyzed || resp.Analysis == nil || resp.Analysis.PartList != "valve" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAssistantHandler_Coordinate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not configured maps to service unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)
		uc.EXPECT().CoordinateWorkOrder(gomock.Any(), "wo-1").Return(interfaces.CoordinationResult{}, usecase.ErrAssistantNotConfigured)

		r := gin.New()
		r.POST("/v1/work-orders/:id/coordination", h.Coordinate)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/coordination", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)
		uc.EXPECT().CoordinateWorkOrder(gomock.Any(), "wo-1").Return(interfaces.CoordinationResult{
			ActionTaken: "notify technician",
			Reason:      "deadline is close",
		}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/coordination", h.Coordinate)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/coordination", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ActionTaken string `json:"action_taken"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ActionTaken != "notify technician" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
