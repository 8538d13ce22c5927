package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/usecase"
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// ListUsers godoc
// @Summary  List the user roster
// @Tags     users
// @Produce  json
// @Param    search query string false "Name, e-mail, company or role"
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}
