package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openquorum/ballot-service/internal/services"
)

type NotificationHandler struct {
	notifications *services.Notifications
}

func NewNotificationHandler(notifications *services.Notifications) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	notifications, err := h.notifications.UserNotifications(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	notification, err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": notification})
}
