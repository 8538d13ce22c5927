package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/usecase"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
// @Summary  Dashboard cards
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.DashboardResponse
// @Router   /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}
