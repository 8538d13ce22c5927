package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "moap_dashboard/internal/adapter/http/dto/request"
	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

var (
	errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)
)

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
	sync    usecase.IPriceSyncUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase, sync usecase.IPriceSyncUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc, sync: sync}
}

// ListMaterials godoc
// @Summary  List the reference price list
// @Tags     materials
// @Produce  json
// @Param    search   query string false "Name or category"
// @Param    category query string false "Category"
// @Param    region   query string false "Region"
// @Param    type     query string false "material or work"
// @Success  200 {array} response.MaterialResponse
// @Router   /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	filter := analytics.MaterialFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Region:   c.Query("region"),
		Type:     c.Query("type"),
	}
	ms, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(ms))
}

func (h *MaterialHandler) ListCategories(c *gin.Context) {
	cats, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// CreateMaterial godoc
// @Summary  Add a material to the price list
// @Tags     materials
// @Accept   json
// @Produce  json
// @Param    body body request.CreateMaterialRequest true "Material"
// @Success  201 {object} response.MaterialResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.CreateMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMaterialPayload)
		return
	}

	m, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(m))
}

func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMaterialPayload)
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncPrices godoc
// @Summary  Refresh prices from the market-price provider
// @Tags     materials
// @Produce  json
// @Success  200 {object} response.PriceSyncResponse
// @Failure  502 {object} pkg.HTTPError
// @Router   /materials/sync [post]
func (h *MaterialHandler) SyncPrices(c *gin.Context) {
	updates, err := h.sync.Sync(c.Request.Context())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceUpdates(updates))
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterial):
		return errInvalidMaterialPayload
	case errors.Is(err, usecase.ErrNoMaterialsToSync):
		return pkg.NewDomainErrorSimple("NO_MATERIALS", "There are no materials to sync", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPriceSyncFailed):
		return pkg.NewDomainError("PRICE_SYNC_FAILED", "Price provider is unavailable", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}
