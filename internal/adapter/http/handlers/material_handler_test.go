package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"moap_dashboard/internal/adapter/http/handlers/mocks"
	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestMaterialHandler_ListMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	h := NewMaterialHandler(uc, mocks.NewMockIPriceSyncUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/materials", h.ListMaterials)

	uc.EXPECT().List(gomock.Any(), analytics.MaterialFilter{Search: "cim", Region: "Lisboa"}).
		Return([]entities.Material{{ID: "1", Name: "Cimento Portland", Price: decimal.RequireFromString("45.5")}}, nil)

	w := serve(r, http.MethodGet, "/v1/materials?search=cim&region=Lisboa", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["price"] != 45.5 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMaterialHandler_CreateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		w := serve(r, http.MethodPost, "/v1/materials", `{"name":"Areia","unit":"m³","category":"Agregados","type":"stone"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, m entities.Material) (entities.Material, error) {
			if m.Name != "Areia" || !m.Price.Equal(decimal.NewFromInt(25)) {
				t.Fatalf("unexpected material: %+v", m)
			}
			m.ID = "m-1"
			return m, nil
		})

		w := serve(r, http.MethodPost, "/v1/materials", `{"name":"Areia","unit":"m³","category":"Agregados","price":25}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_DeleteMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	h := NewMaterialHandler(uc, nil)

	r := gin.New()
	r.DELETE("/v1/materials/:id", h.DeleteMaterial)

	uc.EXPECT().Delete(gomock.Any(), "404").Return(usecase.ErrMaterialNotFound)

	w := serve(r, http.MethodDelete, "/v1/materials/404", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMaterialHandler_SyncPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := mocks.NewMockIPriceSyncUseCase(ctrl)
		h := NewMaterialHandler(nil, sync)

		r := gin.New()
		r.POST("/v1/materials/sync", h.SyncPrices)

		sync.EXPECT().Sync(gomock.Any()).Return(nil, errors.Join(usecase.ErrPriceSyncFailed, errors.New("timeout")))

		w := serve(r, http.MethodPost, "/v1/materials/sync", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := mocks.NewMockIPriceSyncUseCase(ctrl)
		h := NewMaterialHandler(nil, sync)

		r := gin.New()
		r.POST("/v1/materials/sync", h.SyncPrices)

		sync.EXPECT().Sync(gomock.Any()).Return([]entities.PriceUpdate{
			{ID: "1", OldPrice: decimal.NewFromInt(45), NewPrice: decimal.RequireFromString("47.25"), Change: 5},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/materials/sync", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["updated"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
