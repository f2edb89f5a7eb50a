package service

import (
	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
)

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// CreateNotificationInput is the request body for sending a notification.
type CreateNotificationInput struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required,max=100"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=appointment payment ambulance room_booking general"`
}

// BulkNotificationInput is the request body for sending one notification to
// many users at once.
type BulkNotificationInput struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1,dive,required"`
	Title   string `json:"title" binding:"required,max=100"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=appointment payment ambulance room_booking general"`
}

// NotificationListQuery carries the supported list filters.
type NotificationListQuery struct {
	UserID uint   `form:"user_id"`
	IsRead *bool  `form:"is_read"`
	Type   string `form:"type" binding:"omitempty,oneof=appointment payment ambulance room_booking general"`
}

// CreateNotification sends an in-app notification to one patient, stamped
// with the sending admin.
func (s *NotificationService) CreateNotification(input CreateNotificationInput, actorID uint) (*models.Notification, error) {
	ok, err := s.notificationRepo.UserExists(input.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("User")
	}

	notification := &models.Notification{
		UserID:  input.UserID,
		AdminID: &actorID,
		Title:   input.Title,
		Message: input.Message,
		Type:    input.Type,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// CreateBulk sends one notification to a list of patients in a single batch
// insert.
func (s *NotificationService) CreateBulk(input BulkNotificationInput, actorID uint) (int, error) {
	notifications := make([]models.Notification, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		notifications = append(notifications, models.Notification{
			UserID:  userID,
			AdminID: &actorID,
			Title:   input.Title,
			Message: input.Message,
			Type:    input.Type,
		})
	}
	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		return 0, err
	}
	return len(notifications), nil
}

// GetNotification retrieves a notification by ID
func (s *NotificationService) GetNotification(id uint) (*models.Notification, error) {
	return s.notificationRepo.ByID(id)
}

// ListNotifications lists notifications matching the query
func (s *NotificationService) ListNotifications(q NotificationListQuery) ([]models.Notification, error) {
	return s.notificationRepo.List(repository.NotificationFilter{
		UserID: q.UserID,
		IsRead: q.IsRead,
		Type:   q.Type,
	})
}

// MarkRead flags one notification as read.
func (s *NotificationService) MarkRead(id uint) (*models.Notification, error) {
	if _, err := s.notificationRepo.ByID(id); err != nil {
		return nil, err
	}
	if err := s.notificationRepo.MarkRead(id); err != nil {
		return nil, err
	}
	return s.notificationRepo.ByID(id)
}

// MarkAllRead flags all of a user's unread notifications as read and returns
// how many were updated.
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	ok, err := s.notificationRepo.UserExists(userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperr.NotFound("User")
	}
	return s.notificationRepo.MarkAllRead(userID)
}

// UnreadCount counts a user's unread notifications.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	ok, err := s.notificationRepo.UserExists(userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperr.NotFound("User")
	}
	return s.notificationRepo.UnreadCount(userID)
}

// DeleteNotification removes a notification.
func (s *NotificationService) DeleteNotification(id uint) error {
	if _, err := s.notificationRepo.ByID(id); err != nil {
		return err
	}
	return s.notificationRepo.Delete(id)
}
