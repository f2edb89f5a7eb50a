package repository

import (
	"errors"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AmbulanceRequestRepository implements DispatchStore on GORM.
type AmbulanceRequestRepository struct {
	db *gorm.DB
}

func NewAmbulanceRequestRepo(db *gorm.DB) *AmbulanceRequestRepository {
	return &AmbulanceRequestRepository{db: db}
}

// Atomic runs fn inside a database transaction with a transaction-bound repo.
func (r *AmbulanceRequestRepository) Atomic(fn func(DispatchStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewAmbulanceRequestRepo(tx))
	})
}

func (r *AmbulanceRequestRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AmbulanceRequestRepository) AdminByID(id uint) (*models.Admin, error) {
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

func (r *AmbulanceRequestRepository) AmbulanceByID(id uint) (*models.Ambulance, error) {
	var ambulance models.Ambulance
	err := r.db.First(&ambulance, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Ambulance")
		}
		return nil, err
	}
	return &ambulance, nil
}

// AmbulanceForUpdate locks the ambulance row for the remainder of the
// transaction.
func (r *AmbulanceRequestRepository) AmbulanceForUpdate(id uint) (*models.Ambulance, error) {
	var ambulance models.Ambulance
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ambulance, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Ambulance")
		}
		return nil, err
	}
	return &ambulance, nil
}

// FirstAvailableForUpdate selects and locks the first available ambulance of
// the given type in insertion order. Returns nil without error when none is
// available.
func (r *AmbulanceRequestRepository) FirstAvailableForUpdate(ambulanceType string) (*models.Ambulance, error) {
	var ambulance models.Ambulance
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND ambulance_type = ?", models.AmbulanceAvailable, ambulanceType).
		Order("id ASC").
		First(&ambulance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ambulance, nil
}

func (r *AmbulanceRequestRepository) SetAmbulanceStatus(id uint, status string) error {
	return r.db.Model(&models.Ambulance{}).Where("id = ?", id).Update("status", status).Error
}

func (r *AmbulanceRequestRepository) UpdateAmbulance(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Ambulance{}).Where("id = ?", id).Updates(updates).Error
}

func (r *AmbulanceRequestRepository) CountCreatedOn(day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var count int64
	err := r.db.Model(&models.AmbulanceRequest{}).
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

func (r *AmbulanceRequestRepository) Create(req *models.AmbulanceRequest) error {
	return r.db.Create(req).Error
}

func (r *AmbulanceRequestRepository) ByID(id uint) (*models.AmbulanceRequest, error) {
	var req models.AmbulanceRequest
	err := r.db.Preload("User").Preload("Ambulance").First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Ambulance request")
		}
		return nil, err
	}
	return &req, nil
}

func (r *AmbulanceRequestRepository) Save(req *models.AmbulanceRequest) error {
	return r.db.Save(req).Error
}

func (r *AmbulanceRequestRepository) Delete(id uint) error {
	return r.db.Delete(&models.AmbulanceRequest{}, id).Error
}

func (r *AmbulanceRequestRepository) List(f RequestFilter) ([]models.AmbulanceRequest, error) {
	q := r.db.Preload("User").Preload("Ambulance")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RequestType != "" {
		q = q.Where("request_type = ?", f.RequestType)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.StartDate != nil && f.EndDate != nil {
		q = q.Where("request_date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	}

	var requests []models.AmbulanceRequest
	err := q.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// ActiveEmergencies lists emergency requests that are still in flight, for
// the dispatcher dashboard.
func (r *AmbulanceRequestRepository) ActiveEmergencies() ([]models.AmbulanceRequest, error) {
	var requests []models.AmbulanceRequest
	err := r.db.Preload("User").Preload("Ambulance").
		Where("request_type = ?", models.RequestTypeEmergency).
		Where("status IN ?", []string{
			models.RequestPending,
			models.RequestDispatched,
			models.RequestOnWay,
			models.RequestArrived,
		}).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
