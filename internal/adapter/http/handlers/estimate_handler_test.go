package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metalmetrics/internal/adapter/http/handlers/mocks"
	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tenant header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/estimate", h.GetEstimate)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/estimate", h.GetEstimate)

		uc.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").Return(entities.CostEstimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/estimate", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/estimate", h.GetEstimate)

		uc.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").Return(entities.CostEstimate{
			ID:         "est-1",
			JobID:      "job-1",
			LaborHours: decimal.NewFromInt(12),
			QuotePrice: decimal.NewFromInt(3500),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/estimate", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_SaveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id/estimate", h.SaveEstimate)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked after completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id/estimate", h.SaveEstimate)

		uc.EXPECT().Save(gomock.Any(), "tenant-1", "job-1", gomock.Any()).Return(entities.CostEstimate{}, usecase.ErrEstimateLocked)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/estimate", bytes.NewBufferString(`{"labor_hours":"12","material_cost":"600","machine_hours":"6","quote_price":"3500"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success passes explicit rate through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id/estimate", h.SaveEstimate)

		uc.EXPECT().
			Save(gomock.Any(), "tenant-1", "job-1", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, input usecase.EstimateInput) (entities.CostEstimate, error) {
				if input.LaborRate == nil || !input.LaborRate.Equal(decimal.NewFromInt(90)) {
					t.Fatalf("expected explicit labor rate 90, got %v", input.LaborRate)
				}
				if input.MachineRate != nil {
					t.Fatalf("expected machine rate to default, got %v", input.MachineRate)
				}
				return entities.CostEstimate{ID: "est-1", JobID: "job-1"}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/estimate", bytes.NewBufferString(`{"labor_hours":"12","labor_rate":"90","material_cost":"600","machine_hours":"6","quote_price":"3500"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GenerateAIQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"material_type":"304 stainless","material_thickness":"2mm","part_dimensions":"200x100mm","quantity":40,"complexity":"medium"}`

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/estimate/ai", h.GenerateAIQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/estimate/ai", bytes.NewBufferString(`{"material_type":"steel"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("generator not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/estimate/ai", h.GenerateAIQuote)

		uc.EXPECT().GenerateAI(gomock.Any(), "tenant-1", "job-1", gomock.Any()).Return(entities.CostEstimate{}, usecase.ErrQuoteGeneratorNotReady)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/estimate/ai", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/estimate/ai", h.GenerateAIQuote)

		uc.EXPECT().GenerateAI(gomock.Any(), "tenant-1", "job-1", gomock.Any()).Return(entities.CostEstimate{
			ID:          "est-1",
			JobID:       "job-1",
			AIGenerated: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/estimate/ai", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["ai_generated"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(usecase.ErrEstimateLocked); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrQuoteGeneratorNotReady); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
