package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metalmetrics/internal/adapter/http/handlers/mocks"
	"metalmetrics/internal/domain/costing"
	"metalmetrics/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfitabilityHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("report unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitabilityUseCase(ctrl)
		h := NewProfitabilityHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/report", h.GetReport)

		uc.EXPECT().Report(gomock.Any(), "tenant-1", "job-1").Return(costing.JobProfitabilityReport{}, usecase.ErrReportUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/report", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitabilityUseCase(ctrl)
		h := NewProfitabilityHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/report", h.GetReport)

		uc.EXPECT().Report(gomock.Any(), "tenant-1", "job-1").Return(costing.JobProfitabilityReport{
			OverallVerdict: costing.VerdictProfit,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/report", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["overall_verdict"] != string(costing.VerdictProfit) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapReportError(t *testing.T) {
	if got := mapReportError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapReportError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapReportError(usecase.ErrReportUnavailable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapReportError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
