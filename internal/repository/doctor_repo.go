package repository

import (
	"errors"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves all doctors, optionally filtered by specialization
func (r *DoctorRepository) GetAllDoctors(specialization string) ([]models.Doctor, error) {
	q := r.db.Order("name ASC")
	if specialization != "" {
		q = q.Where("specialization = ?", specialization)
	}
	var doctors []models.Doctor
	err := q.Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Doctor")
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// UpdateDoctor updates an existing doctor
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// DeleteDoctor removes a doctor
func (r *DoctorRepository) DeleteDoctor(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
