package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "moap_dashboard/internal/adapter/http/dto/request"
	response "moap_dashboard/internal/adapter/http/dto/response"
	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

const sessionUserKey = "session_user"

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidCredentials  = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Start the operator session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "Credentials"
// @Success  200 {object} response.SessionResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidLoginPayload)
		return
	}

	user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeError(c, errInvalidCredentials)
			return
		}
		writeError(c, mapCommonError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSessionUser(user))
}

// Logout godoc
// @Summary  End the operator session
// @Tags     auth
// @Success  204
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary  Current session user
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.SessionResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.usecase.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionUser(user))
}

// RequireSession rejects requests made while nobody is logged in.
func RequireSession(sessions usecase.SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.CurrentUser(c.Request.Context())
		if !ok {
			writeError(c, errUnauthorized)
			return
		}
		c.Set(sessionUserKey, user)
		c.Next()
	}
}
