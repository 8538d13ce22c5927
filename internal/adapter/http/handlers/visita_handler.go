package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "moap_dashboard/internal/adapter/http/dto/request"
	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

var (
	errInvalidVisitaPayload = pkg.NewDomainErrorSimple("INVALID_VISITA_INPUT", "Invalid visita payload", http.StatusBadRequest)
)

const defaultUpcomingLimit = 5

type VisitaHandler struct {
	usecase usecase.IVisitaUseCase
}

func NewVisitaHandler(uc usecase.IVisitaUseCase) *VisitaHandler {
	return &VisitaHandler{usecase: uc}
}

// ListVisitas godoc
// @Summary  List site visits
// @Tags     visitas
// @Produce  json
// @Param    status  query string false "agendada, realizada or cancelada"
// @Param    obra_id query string false "Obra id"
// @Param    from    query string false "First day (YYYY-MM-DD)"
// @Param    to      query string false "Last day (YYYY-MM-DD)"
// @Success  200 {array} response.VisitaResponse
// @Router   /visitas [get]
func (h *VisitaHandler) ListVisitas(c *gin.Context) {
	filter := analytics.VisitaFilter{
		Status: c.Query("status"),
		ObraID: c.Query("obra_id"),
		From:   entities.Date(c.Query("from")),
		To:     entities.Date(c.Query("to")),
	}
	vs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisitas(vs))
}

func (h *VisitaHandler) ListUpcoming(c *gin.Context) {
	limit := defaultUpcomingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, errInvalidRequest)
			return
		}
		limit = n
	}
	vs, err := h.usecase.Upcoming(c.Request.Context(), limit)
	if err != nil {
		writeError(c, mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisitas(vs))
}

func (h *VisitaHandler) GetVisita(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisita(v))
}

// CreateVisita godoc
// @Summary  Schedule a site visit
// @Tags     visitas
// @Accept   json
// @Produce  json
// @Param    body body request.CreateVisitaRequest true "Visita"
// @Success  201 {object} response.VisitaResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /visitas [post]
func (h *VisitaHandler) CreateVisita(c *gin.Context) {
	var payload request.CreateVisitaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidVisitaPayload)
		return
	}

	v, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapVisitaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVisita(v))
}

func (h *VisitaHandler) UpdateVisita(c *gin.Context) {
	var payload request.UpdateVisitaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidVisitaPayload)
		return
	}

	v, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisita(v))
}

func (h *VisitaHandler) DeleteVisita(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapVisitaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapVisitaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisita):
		return errInvalidVisitaPayload
	case errors.Is(err, usecase.ErrVisitaNotFound):
		return pkg.NewDomainErrorSimple("VISITA_NOT_FOUND", "Visita not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
