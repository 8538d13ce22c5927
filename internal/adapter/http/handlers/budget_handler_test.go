package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"moap_dashboard/internal/adapter/http/handlers/mocks"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		w := serve(r, http.MethodPost, "/v1/budgets", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown obra", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrObraNotFound)

		w := serve(r, http.MethodPost, "/v1/budgets", `{"name":"Orçamento","obra_id":"99"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.Budget{
			ID:     "b-3",
			Name:   "Orçamento",
			Status: entities.BudgetStatusRascunho,
			Items: []entities.BudgetItem{
				{ID: "i-1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)},
			},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/budgets", `{"name":"Orçamento","obra_id":"1","items":[{"material_id":"1","quantity":2,"unit_price":10}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "b-3" || body["total"] != float64(20) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add item with bad quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "1", "2", gomock.Any()).Return(entities.Budget{}, usecase.ErrInvalidQuantity)

		w := serve(r, http.MethodPost, "/v1/budgets/1/items", `{"material_id":"2","quantity":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.DELETE("/v1/budgets/:id/items/:item_id", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "1", "nope").Return(entities.Budget{}, usecase.ErrBudgetItemNotFound)

		w := serve(r, http.MethodDelete, "/v1/budgets/1/items/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("finalize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/finalize", h.FinalizeBudget)

		uc.EXPECT().Finalize(gomock.Any(), "1").Return(entities.Budget{ID: "1", Status: entities.BudgetStatusFinalizado}, nil)

		w := serve(r, http.MethodPatch, "/v1/budgets/1/finalize", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("send unknown budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/send", h.SendBudget)

		uc.EXPECT().MarkSent(gomock.Any(), "99").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		w := serve(r, http.MethodPatch, "/v1/budgets/99/send", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ExportBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:id/export", h.ExportBudget)

		uc.EXPECT().Export(gomock.Any(), "1").Return(usecase.BudgetExport{
			FileName:    "orcamento-Orcamento_Inicial.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK"),
		}, nil)

		w := serve(r, http.MethodGet, "/v1/budgets/1/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="orcamento-Orcamento_Inicial.xlsx"` {
			t.Fatalf("unexpected disposition: %q", got)
		}
		if w.Body.String() != "PK" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("exporter missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:id/export", h.ExportBudget)

		uc.EXPECT().Export(gomock.Any(), "1").Return(usecase.BudgetExport{}, usecase.ErrExportNotConfigured)

		w := serve(r, http.MethodGet, "/v1/budgets/1/export", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
