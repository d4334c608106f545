package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estimate_app/internal/adapter/http/handlers/mocks"
	"estimate_app/internal/adapter/render"
	"estimate_app/internal/domain/calculator"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type estimateHandlerDeps struct {
	uc       *mocks.MockIEstimateUseCase
	settings *mocks.MockISettingsUseCase
	handler  *EstimateHandler
}

func newEstimateHandlerDeps(t *testing.T) estimateHandlerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	settings := mocks.NewMockISettingsUseCase(ctrl)
	return estimateHandlerDeps{
		uc:       uc,
		settings: settings,
		handler:  NewEstimateHandler(uc, settings, render.NewRenderer()),
	}
}

func sampleEstimate() entities.Estimate {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return entities.Estimate{
		ID:             "e-1",
		EstimateNumber: "EST-20240305-1234",
		Client:         entities.Client{ID: "c-1", Name: "Acme Corp", Email: "ops@acme.test"},
		Items: []entities.EstimateItem{
			{ID: "i-1", Description: "Design", Quantity: 2, Rate: 500, Tax: 18, Amount: 1000},
		},
		SubTotal: 1000,
		Tax:      180,
		Total:    1180,
		Status:   entities.EstimateStatusPending,
		Date:     date,
		DueDate:  date.AddDate(0, 0, 30),
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	return body
}

const validEstimateBody = `{"client_id":"c-1","items":[{"description":"Design","quantity":2,"rate":500,"tax":18}],"discount":0,"date":"2024-03-05","due_date":"2024-04-04"}`

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	badRequests := map[string]string{
		"invalid json":    "{",
		"missing client":  `{"items":[{"description":"x","quantity":1,"rate":1}],"date":"2024-03-05","due_date":"2024-03-06"}`,
		"no items":        `{"client_id":"c-1","items":[],"date":"2024-03-05","due_date":"2024-03-06"}`,
		"tax over 100":    `{"client_id":"c-1","items":[{"description":"x","quantity":1,"rate":1,"tax":101}],"date":"2024-03-05","due_date":"2024-03-06"}`,
		"negative rate":   `{"client_id":"c-1","items":[{"description":"x","quantity":1,"rate":-1}],"date":"2024-03-05","due_date":"2024-03-06"}`,
		"unparsable date": `{"client_id":"c-1","items":[{"description":"x","quantity":1,"rate":1}],"date":"05/03/2024","due_date":"2024-03-06"}`,
	}
	for name, body := range badRequests {
		t.Run(name, func(t *testing.T) {
			d := newEstimateHandlerDeps(t)
			r := gin.New()
			r.POST("/v1/estimates", d.handler.CreateEstimate)

			w := serve(r, http.MethodPost, "/v1/estimates", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}

	t.Run("unknown client", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateClientNotFound)

		r := gin.New()
		r.POST("/v1/estimates", d.handler.CreateEstimate)

		w := serve(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "CLIENT_NOT_FOUND" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.EstimateInput) (entities.Estimate, error) {
				if in.ClientID != "c-1" || len(in.Items) != 1 || in.Items[0].Rate != 500 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected date: %v", in.Date)
				}
				return sampleEstimate(), nil
			})

		r := gin.New()
		r.POST("/v1/estimates", d.handler.CreateEstimate)

		w := serve(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["estimate_number"] != "EST-20240305-1234" || body["total"] != float64(1180) {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["status"] != "pending" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, f usecase.EstimateFilter) ([]entities.Estimate, error) {
				if f.Status != "approved" || f.ClientID != "c-1" || f.Query != "acme" {
					t.Fatalf("unexpected filter: %+v", f)
				}
				if f.To.Hour() != 23 {
					t.Fatalf("expected upper bound at end of day, got %v", f.To)
				}
				return []entities.Estimate{sampleEstimate()}, nil
			})

		r := gin.New()
		r.GET("/v1/estimates", d.handler.ListEstimates)

		w := serve(r, http.MethodGet, "/v1/estimates?status=approved&client_id=c-1&q=acme&from=2024-03-01&to=2024-03-31", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected one estimate, got %d", len(body))
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		r := gin.New()
		r.GET("/v1/estimates", d.handler.ListEstimates)

		w := serve(r, http.MethodGet, "/v1/estimates?from=2024-03-31&to=2024-03-01", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk gone"))

		r := gin.New()
		r.GET("/v1/estimates", d.handler.ListEstimates)

		w := serve(r, http.MethodGet, "/v1/estimates", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "An internal error occurred" {
			t.Fatalf("internal error leaked: %v", body)
		}
	})
}

func TestEstimateHandler_GetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.GET("/v1/estimates/:id", d.handler.GetEstimate)

		w := serve(r, http.MethodGet, "/v1/estimates/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().Update(gomock.Any(), "e-1", gomock.Any()).Return(sampleEstimate(), nil)

		r := gin.New()
		r.PUT("/v1/estimates/:id", d.handler.UpdateEstimate)

		w := serve(r, http.MethodPut, "/v1/estimates/e-1", validEstimateBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", d.handler.DeleteEstimate)

		w := serve(r, http.MethodDelete, "/v1/estimates/e-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_StatusAndConvert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		approved := sampleEstimate()
		approved.Status = entities.EstimateStatusApproved
		d.uc.EXPECT().UpdateStatus(gomock.Any(), "e-1", "approved").Return(approved, nil)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", d.handler.UpdateEstimateStatus)

		w := serve(r, http.MethodPatch, "/v1/estimates/e-1/status", `{"status":"approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "approved" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().UpdateStatus(gomock.Any(), "e-1", "archived").Return(entities.Estimate{}, usecase.ErrInvalidEstimateStatus)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", d.handler.UpdateEstimateStatus)

		w := serve(r, http.MethodPatch, "/v1/estimates/e-1/status", `{"status":"archived"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("convert conflict", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().ConvertToInvoice(gomock.Any(), "e-1").Return(entities.Estimate{}, usecase.ErrEstimateNotConvertible)

		r := gin.New()
		r.POST("/v1/estimates/:id/convert", d.handler.ConvertEstimate)

		w := serve(r, http.MethodPost, "/v1/estimates/e-1/convert", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "ESTIMATE_NOT_CONVERTIBLE" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})
}

func TestEstimateHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	d := newEstimateHandlerDeps(t)
	d.uc.EXPECT().Calculate(gomock.Len(2), 100.0).Return(usecase.EstimateCalculation{
		Totals: calculator.Totals{SubTotal: 1500, Tax: 180, Discount: 100, Total: 1580},
	})

	r := gin.New()
	r.POST("/v1/estimates/calculate", d.handler.CalculateEstimate)

	w := serve(r, http.MethodPost, "/v1/estimates/calculate",
		`{"items":[{"description":"Design","quantity":2,"rate":500,"tax":18},{"quantity":1,"rate":500}],"discount":100}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["total"] != float64(1580) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEstimateHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stats", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().Stats(gomock.Any()).Return(usecase.EstimateStats{TotalCount: 3, TotalValue: 650.8, PendingCount: 1, ApprovedCount: 2}, nil)

		r := gin.New()
		r.GET("/v1/estimates/stats", d.handler.EstimateStats)

		w := serve(r, http.MethodGet, "/v1/estimates/stats", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["total_count"] != float64(3) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("recent limit", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().Recent(gomock.Any(), 3).Return([]entities.Estimate{sampleEstimate()}, nil)

		r := gin.New()
		r.GET("/v1/estimates/recent", d.handler.RecentEstimates)

		w := serve(r, http.MethodGet, "/v1/estimates/recent?limit=3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("recent bad limit", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		r := gin.New()
		r.GET("/v1/estimates/recent", d.handler.RecentEstimates)

		w := serve(r, http.MethodGet, "/v1/estimates/recent?limit=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ExportEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	d := newEstimateHandlerDeps(t)
	d.uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(usecase.ExportFile{
		Name:        "estimates-2024-03-05.csv",
		ContentType: "text/csv",
		Data:        []byte("Estimate Number,Client\nEST-1,Acme Corp\n"),
		Rows:        1,
	}, nil)

	r := gin.New()
	r.GET("/v1/estimates/export", d.handler.ExportEstimates)

	w := serve(r, http.MethodGet, "/v1/estimates/export?status=all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="estimates-2024-03-05.csv"` {
		t.Fatalf("unexpected content disposition %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), "Estimate Number,") {
		t.Fatalf("unexpected csv %q", w.Body.String())
	}
}

func TestEstimateHandler_PrintAndPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	company := entities.Settings{CompanyProfile: entities.CompanyProfile{CompanyName: "Bright Studio", Email: "hi@bright.test"}}

	t.Run("print", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().GetByID(gomock.Any(), "e-1").Return(sampleEstimate(), nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(company, nil)

		r := gin.New()
		r.GET("/v1/estimates/:id/print", d.handler.PrintEstimate)

		w := serve(r, http.MethodGet, "/v1/estimates/e-1/print", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Bright Studio") || !strings.Contains(w.Body.String(), "EST-20240305-1234") {
			t.Fatalf("printable page misses company or number")
		}
	})

	t.Run("pdf", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().GetByID(gomock.Any(), "e-1").Return(sampleEstimate(), nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(company, nil)

		r := gin.New()
		r.GET("/v1/estimates/:id/pdf", d.handler.EstimatePDF)

		w := serve(r, http.MethodGet, "/v1/estimates/e-1/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != render.ContentTypePDF {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf body")
		}
	})

	t.Run("missing estimate", func(t *testing.T) {
		d := newEstimateHandlerDeps(t)
		d.uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.GET("/v1/estimates/:id/pdf", d.handler.EstimatePDF)

		w := serve(r, http.MethodGet, "/v1/estimates/nope/pdf", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidEstimateID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidEstimateStatus, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrEstimateClientRequired, http.StatusBadRequest, "INVALID_ESTIMATE_INPUT"},
		{usecase.ErrEstimateItemsRequired, http.StatusBadRequest, "INVALID_ESTIMATE_INPUT"},
		{usecase.ErrEstimateDateRequired, http.StatusBadRequest, "INVALID_ESTIMATE_INPUT"},
		{usecase.ErrEstimateDueDateRequired, http.StatusBadRequest, "INVALID_ESTIMATE_INPUT"},
		{fmt.Errorf("%w: item 1: %w", usecase.ErrInvalidEstimateInput, entities.ErrItemTaxOutOfRange), http.StatusBadRequest, "INVALID_ESTIMATE_INPUT"},
		{usecase.ErrEstimateClientNotFound, http.StatusBadRequest, "CLIENT_NOT_FOUND"},
		{usecase.ErrEstimateNotFound, http.StatusNotFound, "ESTIMATE_NOT_FOUND"},
		{usecase.ErrEstimateNotConvertible, http.StatusConflict, "ESTIMATE_NOT_CONVERTIBLE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		appErr := mapEstimateError(tt.err)
		if appErr.HTTPStatus != tt.status || appErr.Code != tt.code {
			t.Fatalf("%v: got %d %s", tt.err, appErr.HTTPStatus, appErr.Code)
		}
	}
}
