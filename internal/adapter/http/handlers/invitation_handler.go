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

var (
	errInvalidInvitationPayload = pkg.NewDomainErrorSimple("INVALID_INVITATION_INPUT", "Invalid invitation payload", http.StatusBadRequest)
)

type InvitationHandler struct {
	usecase usecase.IInvitationUseCase
}

func NewInvitationHandler(uc usecase.IInvitationUseCase) *InvitationHandler {
	return &InvitationHandler{usecase: uc}
}

func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	is, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapInvitationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvitations(is))
}

// SendInvitation godoc
// @Summary  Invite someone to the platform by e-mail
// @Tags     invitations
// @Accept   json
// @Produce  json
// @Param    body body request.InvitationRequest true "Invitation"
// @Success  201 {object} response.InvitationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /invitations [post]
func (h *InvitationHandler) SendInvitation(c *gin.Context) {
	var payload request.InvitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidInvitationPayload)
		return
	}

	inv, err := h.usecase.Send(c.Request.Context(), usecase.InvitationInput{
		Email: payload.Email,
		Name:  payload.Name,
		Role:  payload.Role,
	})
	if err != nil {
		writeError(c, mapInvitationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvitation(inv))
}

// SendBulkInvitations godoc
// @Summary  Invite several addresses at once
// @Tags     invitations
// @Accept   json
// @Produce  json
// @Param    body body request.BulkInvitationRequest true "Addresses"
// @Success  201 {array} response.InvitationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /invitations/bulk [post]
func (h *InvitationHandler) SendBulkInvitations(c *gin.Context) {
	var payload request.BulkInvitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidInvitationPayload)
		return
	}

	is, err := h.usecase.SendBulk(c.Request.Context(), payload.Emails)
	if err != nil {
		writeError(c, mapInvitationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvitations(is))
}

func mapInvitationError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidEmail) || errors.Is(err, usecase.ErrNoInvitationEmails) {
		return errInvalidInvitationPayload
	}
	return mapCommonError(err)
}
