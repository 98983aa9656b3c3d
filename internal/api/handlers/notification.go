package handlers

import (
	"net/http"
	"strconv"

	"crowdaid-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the caller's notifications
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/v1/notifications
// @Summary List notifications
// @Description List the caller's newest notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Success 200 {array} models.Notification "Successfully retrieved notifications"
// @Failure 400 {object} ErrorResponse "Invalid unreadOnly flag"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	unreadOnly := false
	if raw := c.DefaultQuery("unreadOnly", c.Query("unread_only")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid unreadOnly flag", Details: err.Error()})
			return
		}
		unreadOnly = parsed
	}

	notifications, err := h.service.ListForUser(principal.UserID, unreadOnly)
	if err != nil {
		respondError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/v1/notifications/unread-count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64 "Unread count"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(principal.UserID)
	if err != nil {
		respondError(c, err, "Failed to count notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead handles PUT /api/v1/notifications/:id/read
// @Summary Mark a notification read
// @Description Mark one of the caller's notifications read. Unknown ids are ignored.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} map[string]string "Notification marked as read"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "notification")
	if !ok {
		return
	}

	if err := h.service.MarkRead(id, principal.UserID); err != nil {
		respondError(c, err, "Failed to mark notification read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead handles PUT /api/v1/notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Number of notifications changed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllRead(principal.UserID)
	if err != nil {
		respondError(c, err, "Failed to mark notifications read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": updated})
}
