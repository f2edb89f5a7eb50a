package service

import "healthcare-hub-backend/internal/models"

// Notifier delivers in-app notifications to patients. Satisfied by
// repository.NotificationRepository.
type Notifier interface {
	Create(n *models.Notification) error
}

// ActivityLogger records administrative mutations. Satisfied by
// repository.ActivityLogRepository.
type ActivityLogger interface {
	CreateLog(adminID *uint, action, table string, recordID *uint, details string) error
}

const dateLayout = "2006-01-02"
