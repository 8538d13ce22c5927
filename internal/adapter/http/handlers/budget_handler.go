package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "moap_dashboard/internal/adapter/http/dto/request"
	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// ListBudgets godoc
// @Summary  List budgets
// @Tags     budgets
// @Produce  json
// @Param    search  query string false "Budget or obra name"
// @Param    obra_id query string false "Obra id"
// @Param    status  query string false "rascunho, finalizado or enviado"
// @Success  200 {array} response.BudgetResponse
// @Router   /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	filter := analytics.BudgetFilter{
		Search: c.Query("search"),
		ObraID: c.Query("obra_id"),
		Status: c.Query("status"),
	}
	bs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(bs))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// CreateBudget godoc
// @Summary  Create a budget
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    body body request.CreateBudgetRequest true "Budget"
// @Success  201 {object} response.BudgetResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary  Add a material line to a budget
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    id   path string true "Budget id"
// @Param    body body request.AddBudgetItemRequest true "Line"
// @Success  201 {object} response.BudgetResponse
// @Router   /budgets/{id}/items [post]
func (h *BudgetHandler) AddItem(c *gin.Context) {
	var payload request.AddBudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.MaterialID, payload.Quantity)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) RemoveItem(c *gin.Context) {
	b, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) DuplicateBudget(c *gin.Context) {
	b, err := h.usecase.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) FinalizeBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Finalize)
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.MarkSent)
}

func (h *BudgetHandler) patchBudgetStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Budget, error)) {
	b, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ExportBudget godoc
// @Summary  Download a budget as a spreadsheet
// @Tags     budgets
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id path string true "Budget id"
// @Success  200 {file} file
// @Failure  404 {object} pkg.HTTPError
// @Router   /budgets/{id}/export [get]
func (h *BudgetHandler) ExportBudget(c *gin.Context) {
	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudget), errors.Is(err, usecase.ErrInvalidQuantity):
		return errInvalidBudgetPayload
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetItemNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_ITEM_NOT_FOUND", "Budget item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExportNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Budget export is not available", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
