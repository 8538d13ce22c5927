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
	errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)
)

type MessageHandler struct {
	usecase usecase.IMessageUseCase
}

func NewMessageHandler(uc usecase.IMessageUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

// ListConversations godoc
// @Summary  List conversations
// @Tags     conversations
// @Produce  json
// @Param    search query string false "Participant name"
// @Success  200 {array} response.ConversationResponse
// @Router   /conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	cs, err := h.usecase.ListConversations(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConversations(cs))
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	n, err := h.usecase.UnreadCount(c.Request.Context())
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	ms, err := h.usecase.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(ms))
}

// SendMessage godoc
// @Summary  Send a message in a conversation
// @Tags     conversations
// @Accept   json
// @Produce  json
// @Param    id   path string true "Conversation id"
// @Param    body body request.SendMessageRequest true "Message"
// @Success  201 {object} response.MessageResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /conversations/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMessagePayload)
		return
	}

	m, err := h.usecase.SendMessage(c.Request.Context(), c.Param("id"), payload.Content)
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMessage(m))
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	conv, err := h.usecase.MarkConversationRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConversation(conv))
}

func mapMessageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage):
		return errInvalidMessagePayload
	case errors.Is(err, usecase.ErrConversationNotFound):
		return pkg.NewDomainErrorSimple("CONVERSATION_NOT_FOUND", "Conversation not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
