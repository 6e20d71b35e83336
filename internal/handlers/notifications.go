package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/auth"
	"tutoring_queue/internal/response"
)

// GetNotifications godoc
// @Summary		My notifications
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}	models.Notification
// @Router			/profile/notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.Notices.ForUser(auth.UserID(c)))
}

// GetUnreadCount godoc
// @Summary		Unread notification count
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	response.UnreadResponse
// @Router			/profile/notifications/unread [get]
func (h *Handler) GetUnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, response.UnreadResponse{Unread: h.Notices.UnreadCount(auth.UserID(c))})
}

// MarkNotificationRead godoc
// @Summary		Mark a notification as read
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Notification ID"
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"NOTIFICATION_NOT_FOUND"
// @Router			/profile/notifications/{id}/read [post]
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	if !h.Notices.MarkRead(auth.UserID(c), c.Param("id")) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOTIFICATION_NOT_FOUND",
			Message: "Notification not found",
		})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Notification marked as read"})
}

// MarkAllNotificationsRead godoc
// @Summary		Mark all notifications as read
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	response.UnreadResponse	"Unread count after the update"
// @Router			/profile/notifications/read-all [post]
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	userID := auth.UserID(c)
	h.Notices.MarkAllRead(userID)
	c.JSON(http.StatusOK, response.UnreadResponse{Unread: h.Notices.UnreadCount(userID)})
}
