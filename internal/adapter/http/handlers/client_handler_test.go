package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"estimate_app/internal/adapter/http/handlers/mocks"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		w := serve(r, http.MethodPost, "/v1/clients", `{"name":"Acme","email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_CLIENT_INPUT" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), usecase.ClientInput{
			Name: "Acme Corp", Email: "ops@acme.test", Phone: "+91 98765 43210", Address: "12 MG Road, Pune", GSTNumber: "27AAAPL1234C1Z5",
		}).Return(entities.Client{ID: "c-1", Name: "Acme Corp", Email: "ops@acme.test", GSTNumber: "27AAAPL1234C1Z5"}, nil)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		w := serve(r, http.MethodPost, "/v1/clients",
			`{"name":"Acme Corp","email":"ops@acme.test","phone":"+91 98765 43210","address":"12 MG Road, Pune","gst_number":"27AAAPL1234C1Z5"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "c-1" || body["gst_number"] != "27AAAPL1234C1Z5" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestClientHandler_ListGetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c-1"}, {ID: "c-2"}}, nil)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients", h.ListClients)

		w := serve(r, http.MethodGet, "/v1/clients", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body) != 2 || body[1]["id"] != "c-2" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Client{}, usecase.ErrClientNotFound)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:id", h.GetClient)

		w := serve(r, http.MethodGet, "/v1/clients/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Client{ID: "c-1", Name: "Acme Ltd"}, nil)
		h := NewClientHandler(uc)

		r := gin.New()
		r.PUT("/v1/clients/:id", h.UpdateClient)

		w := serve(r, http.MethodPut, "/v1/clients/c-1", `{"name":"Acme Ltd","email":"ops@acme.test","phone":"020 1234","address":"12 MG Road, Pune"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["name"] != "Acme Ltd" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.DeleteClient)

		w := serve(r, http.MethodDelete, "/v1/clients/c-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapClientError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidClientID, http.StatusBadRequest, "INVALID_REQUEST"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidClientInput, entities.ErrClientNameRequired), http.StatusBadRequest, "INVALID_CLIENT_INPUT"},
		{usecase.ErrClientNotFound, http.StatusNotFound, "CLIENT_NOT_FOUND"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		appErr := mapClientError(tt.err)
		if appErr.HTTPStatus != tt.status || appErr.Code != tt.code {
			t.Fatalf("%v: got %d %s", tt.err, appErr.HTTPStatus, appErr.Code)
		}
	}
}
