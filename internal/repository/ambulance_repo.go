package repository

import (
	"errors"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
)

type AmbulanceRepository struct {
	db *gorm.DB
}

func NewAmbulanceRepo(db *gorm.DB) *AmbulanceRepository {
	return &AmbulanceRepository{db: db}
}

// GetAllAmbulances retrieves all ambulances
func (r *AmbulanceRepository) GetAllAmbulances() ([]models.Ambulance, error) {
	var ambulances []models.Ambulance
	err := r.db.Order("plate_number ASC").Find(&ambulances).Error
	return ambulances, err
}

// GetAmbulanceByID retrieves an ambulance by ID
func (r *AmbulanceRepository) GetAmbulanceByID(id uint) (*models.Ambulance, error) {
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

// PlateNumberTaken reports whether another ambulance already uses the plate
func (r *AmbulanceRepository) PlateNumberTaken(plate string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Ambulance{}).Where("plate_number = ?", plate)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// SearchAvailable lists available ambulances, cheapest base fare first
func (r *AmbulanceRepository) SearchAvailable(ambulanceType, location string) ([]models.Ambulance, error) {
	q := r.db.Where("status = ?", models.AmbulanceAvailable)
	if ambulanceType != "" {
		q = q.Where("ambulance_type = ?", ambulanceType)
	}
	if location != "" {
		q = q.Where("current_location LIKE ?", "%"+location+"%")
	}
	var ambulances []models.Ambulance
	err := q.Order("base_fare ASC").Find(&ambulances).Error
	return ambulances, err
}

// HasActiveRequest reports whether the ambulance has a non-terminal request
func (r *AmbulanceRepository) HasActiveRequest(ambulanceID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.AmbulanceRequest{}).
		Where("ambulance_id = ?", ambulanceID).
		Where("status NOT IN ?", []string{models.RequestCompleted, models.RequestCancelled}).
		Count(&count).Error
	return count > 0, err
}

// CreateAmbulance creates a new ambulance
func (r *AmbulanceRepository) CreateAmbulance(ambulance *models.Ambulance) error {
	return r.db.Create(ambulance).Error
}

// UpdateAmbulance updates an existing ambulance
func (r *AmbulanceRepository) UpdateAmbulance(ambulance *models.Ambulance) error {
	return r.db.Save(ambulance).Error
}

// DeleteAmbulance removes an ambulance
func (r *AmbulanceRepository) DeleteAmbulance(id uint) error {
	return r.db.Delete(&models.Ambulance{}, id).Error
}
