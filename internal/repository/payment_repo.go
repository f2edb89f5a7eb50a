package repository

import (
	"errors"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository implements PaymentStore on GORM.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Atomic runs fn inside a database transaction with a transaction-bound repo.
func (r *PaymentRepository) Atomic(fn func(PaymentStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewPaymentRepo(tx))
	})
}

func (r *PaymentRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) AdminByID(id uint) (*models.Admin, error) {
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

func (r *PaymentRepository) AppointmentExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) BookingExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.RoomBooking{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) RequestExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.AmbulanceRequest{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) ByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("User").First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Payment")
		}
		return nil, err
	}
	return &payment, nil
}

// ForUpdate locks the payment row so a confirmation cannot race another.
func (r *PaymentRepository) ForUpdate(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Payment")
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Save(p *models.Payment) error {
	return r.db.Save(p).Error
}

func (r *PaymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

func (r *PaymentRepository) List(f PaymentFilter) ([]models.Payment, error) {
	q := r.db.Preload("User")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", f.PaymentMethod)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}

	var payments []models.Payment
	err := q.Order("created_at DESC").Find(&payments).Error
	return payments, err
}
