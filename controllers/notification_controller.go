package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/services"
	"github.com/ripplefeed/api-go/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// Stream godoc
// @Summary Subscribe to notifications
// @Description Long-lived SSE stream of the caller's notification messages
// @Tags notifications
// @Produce text/event-stream
// @Success 200
// @Router /notifications/stream [get]
func (nc *NotificationController) Stream(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	sub := nc.Notifications.Subscribe(user.UserID)
	ctx := c.Request.Context()

	// Client disconnect cancels ctx; the mailbox outlives this stream so
	// undelivered messages wait for the next subscriber.
	for {
		message, ok := sub.Next(ctx)
		if !ok {
			return
		}
		c.SSEvent("notification", message)
		c.Writer.Flush()
	}
}
