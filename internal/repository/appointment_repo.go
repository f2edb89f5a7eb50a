package repository

import (
	"errors"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
)

// AppointmentRepository implements AppointmentStore on GORM.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Atomic runs fn inside a database transaction with a transaction-bound repo.
func (r *AppointmentRepository) Atomic(fn func(AppointmentStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewAppointmentRepo(tx))
	})
}

func (r *AppointmentRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AppointmentRepository) AdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin")
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AppointmentRepository) DoctorExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AppointmentRepository) CountCreatedOn(day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

func (r *AppointmentRepository) Create(a *models.Appointment) error {
	return r.db.Create(a).Error
}

func (r *AppointmentRepository) ByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("User").Preload("Doctor").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Appointment")
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Save(a *models.Appointment) error {
	return r.db.Save(a).Error
}

func (r *AppointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentRepository) List(f AppointmentFilter) ([]models.Appointment, error) {
	q := r.db.Preload("User").Preload("Doctor")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != nil {
		q = q.Where("appointment_date = ?", f.Date)
	}
	if f.DoctorID != 0 {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}

	var appointments []models.Appointment
	err := q.Order("appointment_date DESC").Find(&appointments).Error
	return appointments, err
}
