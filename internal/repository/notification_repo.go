package repository

import (
	"errors"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// List retrieves notifications, newest first
func (r *NotificationRepository) List(f NotificationFilter) ([]models.Notification, error) {
	q := r.db.Preload("User").Preload("Admin")

	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.IsRead != nil {
		q = q.Where("is_read = ?", *f.IsRead)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var notifications []models.Notification
	err := q.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// ByID retrieves a notification by ID
func (r *NotificationRepository) ByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Preload("User").Preload("Admin").First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Notification")
		}
		return nil, err
	}
	return &notification, nil
}

// Create creates a notification
func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// CreateBatch inserts a batch of notifications in one statement
func (r *NotificationRepository) CreateBatch(ns []models.Notification) error {
	return r.db.Create(&ns).Error
}

// Save updates a notification
func (r *NotificationRepository) Save(n *models.Notification) error {
	return r.db.Save(n).Error
}

// Delete removes a notification
func (r *NotificationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Notification{}, id).Error
}

// MarkRead flags one notification as read
func (r *NotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}

// MarkAllRead flags every unread notification of a user as read and returns
// the number updated
func (r *NotificationRepository) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// UnreadCount counts a user's unread notifications
func (r *NotificationRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// UserExists reports whether the user exists
func (r *NotificationRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
