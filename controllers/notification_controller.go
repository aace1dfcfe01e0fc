package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type NotificationController struct {
	Notifier *services.NotificationService
}

func NewNotificationController(notifier *services.NotificationService) *NotificationController {
	return &NotificationController{Notifier: notifier}
}

// List returns the session's live toasts.
func (nc *NotificationController) List(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, nc.Notifier.List(sess))
}

// Dismiss removes a toast early; dismissing an expired toast is a no-op.
func (nc *NotificationController) Dismiss(c *gin.Context) {
	sess := middleware.GetSession(c)
	nc.Notifier.Dismiss(sess, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "dismissed"})
}
