package handlers

import (
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
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications godoc
// @Summary  List notifications, newest first
// @Tags     notifications
// @Produce  json
// @Param    type   query string false "Notification type"
// @Param    unread query bool   false "Only unread"
// @Success  200 {array} response.NotificationResponse
// @Router   /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	filter := analytics.NotificationFilter{
		Type:       c.Query("type"),
		UnreadOnly: c.Query("unread") == "true",
	}
	ns, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(ns))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.usecase.UnreadCount(c.Request.Context())
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var payload request.CreateNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidNotificationPayload)
		return
	}

	n, err := h.usecase.Add(c.Request.Context(), usecase.NotificationInput{
		Type:        entities.NotificationType(payload.Type),
		Title:       payload.Title,
		Description: payload.Description,
		Link:        payload.Link,
	})
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromNotification(n))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.usecase.MarkAllRead(c.Request.Context())
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

// ClearNotifications godoc
// @Summary  Delete every notification
// @Tags     notifications
// @Produce  json
// @Success  200 {object} response.CountResponse
// @Router   /notifications [delete]
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	n, err := h.usecase.Clear(c.Request.Context())
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotification):
		return errInvalidNotificationPayload
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
