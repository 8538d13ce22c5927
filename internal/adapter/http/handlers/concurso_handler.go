package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	request "moap_dashboard/internal/adapter/http/dto/request"
	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

var (
	errInvalidInvitePayload = pkg.NewDomainErrorSimple("INVALID_INVITE_INPUT", "Invalid invite payload", http.StatusBadRequest)
)

type ConcursoHandler struct {
	usecase usecase.IConcursoUseCase
}

func NewConcursoHandler(uc usecase.IConcursoUseCase) *ConcursoHandler {
	return &ConcursoHandler{usecase: uc}
}

// ListConcursos godoc
// @Summary  List public tenders
// @Tags     concursos
// @Produce  json
// @Param    search     query string false "Title or contracting entity"
// @Param    region     query string false "Region"
// @Param    category   query string false "Category"
// @Param    type       query string false "Type"
// @Param    status     query string false "aberto, fechado or em_avaliacao"
// @Param    budget_min query number false "Minimum budget"
// @Param    budget_max query number false "Maximum budget"
// @Success  200 {array} response.ConcursoResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /concursos [get]
func (h *ConcursoHandler) ListConcursos(c *gin.Context) {
	filter := analytics.ConcursoFilter{
		Search:   c.Query("search"),
		Region:   c.Query("region"),
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
	}
	var err error
	if filter.BudgetMin, err = decimalQuery(c, "budget_min"); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if filter.BudgetMax, err = decimalQuery(c, "budget_max"); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	cs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapConcursoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConcursos(cs))
}

// GetConcurso also reports the days left until the deadline when it is a
// valid date.
func (h *ConcursoHandler) GetConcurso(c *gin.Context) {
	ctx := c.Request.Context()
	con, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, mapConcursoError(err))
		return
	}
	resp := response.FromConcurso(con)
	days, ok, err := h.usecase.DaysUntilDeadline(ctx, con.ID)
	if err != nil {
		writeError(c, mapConcursoError(err))
		return
	}
	if ok {
		resp.DaysLeft = &days
	}
	c.JSON(http.StatusOK, resp)
}

// InviteUsers godoc
// @Summary  Invite roster users to a tender
// @Tags     concursos
// @Accept   json
// @Produce  json
// @Param    id   path string true "Concurso id"
// @Param    body body request.InviteUsersRequest true "Users"
// @Success  200 {object} response.ConcursoResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /concursos/{id}/invitations [post]
func (h *ConcursoHandler) InviteUsers(c *gin.Context) {
	var payload request.InviteUsersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidInvitePayload)
		return
	}

	con, err := h.usecase.InviteUsers(c.Request.Context(), c.Param("id"), payload.UserIDs)
	if err != nil {
		writeError(c, mapConcursoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConcurso(con))
}

func mapConcursoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoUsersToInvite):
		return errInvalidInvitePayload
	case errors.Is(err, usecase.ErrConcursoNotFound):
		return pkg.NewDomainErrorSimple("CONCURSO_NOT_FOUND", "Concurso not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}

func decimalQuery(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
