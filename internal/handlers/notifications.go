package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// GetNotifications lists the caller's notifications, unread first (PROTECTED)
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	if err := h.db.Where("user_id = ?", userID).
		Order("is_read asc, created_at desc").
		Find(&notifications).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	var unread int64
	h.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notifications,
		"unread":  unread,
	})
}

// MarkRead marks a single notification as read (PROTECTED - recipient only)
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notificationID := c.Param("id")

	var notification models.Notification
	if err := h.db.Where("user_id = ?", userID).First(&notification, notificationID).Error; err != nil {
		fail(c, http.StatusNotFound, "Notification not found")
		return
	}

	if err := h.db.Model(&notification).Update("is_read", true).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	notification.IsRead = true

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notification,
	})
}

// MarkAllRead marks every notification of the caller as read (PROTECTED)
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All notifications marked as read",
	})
}
