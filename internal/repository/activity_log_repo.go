package repository

import (
	"healthcare-hub-backend/internal/models"

	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepo(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// CreateLog records an administrative action
func (r *ActivityLogRepository) CreateLog(adminID *uint, action, table string, recordID *uint, details string) error {
	entry := &models.AdminActivityLog{
		AdminID:     adminID,
		Action:      action,
		TargetTable: table,
		RecordID:    recordID,
		Details:     details,
	}
	return r.db.Create(entry).Error
}

// LogsByAdmin lists the recent actions of one admin
func (r *ActivityLogRepository) LogsByAdmin(adminID uint, limit int) ([]models.AdminActivityLog, error) {
	var logs []models.AdminActivityLog
	err := r.db.Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
