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
	errInvalidObraPayload = pkg.NewDomainErrorSimple("INVALID_OBRA_INPUT", "Invalid obra payload", http.StatusBadRequest)
)

type ObraHandler struct {
	usecase usecase.IObraUseCase
}

func NewObraHandler(uc usecase.IObraUseCase) *ObraHandler {
	return &ObraHandler{usecase: uc}
}

// ListObras godoc
// @Summary  List construction projects
// @Tags     obras
// @Produce  json
// @Param    search query string false "Name or address"
// @Param    status query string false "Approval status"
// @Param    region query string false "Region"
// @Param    sort   query string false "date, budget or name"
// @Success  200 {array} response.ObraResponse
// @Router   /obras [get]
func (h *ObraHandler) ListObras(c *gin.Context) {
	filter := analytics.ObraFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Region: c.Query("region"),
	}
	obras, err := h.usecase.List(c.Request.Context(), filter, analytics.ObraSort(c.Query("sort")))
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObras(obras))
}

func (h *ObraHandler) ListRegions(c *gin.Context) {
	regions, err := h.usecase.Regions(c.Request.Context())
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, regions)
}

func (h *ObraHandler) GetObra(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObra(o))
}

// GetObraOverview godoc
// @Summary  Obra with its budgets, visits and team
// @Tags     obras
// @Produce  json
// @Param    id path string true "Obra id"
// @Success  200 {object} response.ObraOverviewResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /obras/{id}/overview [get]
func (h *ObraHandler) GetObraOverview(c *gin.Context) {
	ov, err := h.usecase.Overview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObraOverview(ov))
}

// CreateObra godoc
// @Summary  Submit a construction project for review
// @Tags     obras
// @Accept   json
// @Produce  json
// @Param    body body request.CreateObraRequest true "Obra"
// @Success  201 {object} response.ObraResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /obras [post]
func (h *ObraHandler) CreateObra(c *gin.Context) {
	var payload request.CreateObraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidObraPayload)
		return
	}

	o, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromObra(o))
}

func (h *ObraHandler) UpdateObra(c *gin.Context) {
	var payload request.UpdateObraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidObraPayload)
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObra(o))
}

func (h *ObraHandler) DeleteObra(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ObraHandler) AssignUser(c *gin.Context) {
	var payload request.AssignUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidObraPayload)
		return
	}

	o, err := h.usecase.AssignUser(c.Request.Context(), c.Param("id"), payload.UserID)
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObra(o))
}

func mapObraError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidObra) {
		return errInvalidObraPayload
	}
	return mapCommonError(err)
}
