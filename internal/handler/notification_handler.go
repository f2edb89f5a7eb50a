package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// CreateNotification sends a notification to one patient
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var input service.CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	notification, err := h.notificationService.CreateNotification(input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Notification created successfully", notification)
}

// CreateBulkNotifications sends one notification to many patients
func (h *NotificationHandler) CreateBulkNotifications(c *gin.Context) {
	var input service.BulkNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	count, err := h.notificationService.CreateBulk(input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Notifications created successfully", gin.H{"count": count})
}

// GetNotification retrieves a notification by ID
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.GetNotification(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notification retrieved successfully", notification)
}

// GetAllNotifications lists notifications matching the query filters
func (h *NotificationHandler) GetAllNotifications(c *gin.Context) {
	var q service.NotificationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	notifications, err := h.notificationService.ListNotifications(q)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notifications retrieved successfully", gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkRead flags one notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notification marked as read", notification)
}

// MarkAllRead flags all of a user's unread notifications as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	updated, err := h.notificationService.MarkAllRead(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notifications marked as read", gin.H{"updated": updated})
}

// GetUnreadCount counts a user's unread notifications
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Unread count retrieved successfully", gin.H{"unread_count": count})
}

// DeleteNotification removes a notification
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.DeleteNotification(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notification deleted successfully", nil)
}
