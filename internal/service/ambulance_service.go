package service

import (
	"fmt"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
)

type AmbulanceService struct {
	ambulanceRepo *repository.AmbulanceRepository
	logs          ActivityLogger
}

func NewAmbulanceService(ambulanceRepo *repository.AmbulanceRepository, logs ActivityLogger) *AmbulanceService {
	return &AmbulanceService{
		ambulanceRepo: ambulanceRepo,
		logs:          logs,
	}
}

// CreateAmbulanceInput is the request body for registering an ambulance.
type CreateAmbulanceInput struct {
	PlateNumber     string  `json:"plate_number" binding:"required,max=20"`
	AmbulanceType   string  `json:"ambulance_type" binding:"required,oneof=emergency transport icu"`
	BaseFare        float64 `json:"base_fare" binding:"required,gt=0"`
	PerKmFare       float64 `json:"per_km_fare" binding:"required,gt=0"`
	DriverName      string  `json:"driver_name" binding:"omitempty,max=100"`
	DriverPhone     string  `json:"driver_phone" binding:"omitempty,max=20"`
	CurrentLocation string  `json:"current_location" binding:"omitempty,max=255"`
}

// UpdateAmbulanceInput is the request body for updating an ambulance. Status
// here only toggles the maintenance override; operating is driven by
// dispatches.
type UpdateAmbulanceInput struct {
	PlateNumber     string   `json:"plate_number" binding:"omitempty,max=20"`
	AmbulanceType   string   `json:"ambulance_type" binding:"omitempty,oneof=emergency transport icu"`
	BaseFare        *float64 `json:"base_fare" binding:"omitempty,gt=0"`
	PerKmFare       *float64 `json:"per_km_fare" binding:"omitempty,gt=0"`
	DriverName      string   `json:"driver_name" binding:"omitempty,max=100"`
	DriverPhone     string   `json:"driver_phone" binding:"omitempty,max=20"`
	CurrentLocation string   `json:"current_location" binding:"omitempty,max=255"`
	Status          string   `json:"status" binding:"omitempty,oneof=available maintenance"`
}

// AmbulanceSearchQuery carries the availability search parameters.
type AmbulanceSearchQuery struct {
	AmbulanceType string `form:"ambulance_type" binding:"omitempty,oneof=emergency transport icu"`
	Location      string `form:"location"`
}

// CreateAmbulance registers a new ambulance.
func (s *AmbulanceService) CreateAmbulance(input CreateAmbulanceInput, actorID uint) (*models.Ambulance, error) {
	if taken, err := s.ambulanceRepo.PlateNumberTaken(input.PlateNumber, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Validation("Validation Error", map[string]string{"plate_number": "is already registered"})
	}

	ambulance := &models.Ambulance{
		PlateNumber:     input.PlateNumber,
		AmbulanceType:   input.AmbulanceType,
		BaseFare:        input.BaseFare,
		PerKmFare:       input.PerKmFare,
		Status:          models.AmbulanceAvailable,
		DriverName:      input.DriverName,
		DriverPhone:     input.DriverPhone,
		CurrentLocation: input.CurrentLocation,
	}

	if err := s.ambulanceRepo.CreateAmbulance(ambulance); err != nil {
		return nil, err
	}

	s.log(actorID, "ambulance_create", ambulance.ID,
		fmt.Sprintf("Created ambulance %s (%s)", ambulance.PlateNumber, ambulance.AmbulanceType))
	return ambulance, nil
}

// GetAmbulance retrieves an ambulance by ID
func (s *AmbulanceService) GetAmbulance(id uint) (*models.Ambulance, error) {
	return s.ambulanceRepo.GetAmbulanceByID(id)
}

// ListAmbulances retrieves all ambulances
func (s *AmbulanceService) ListAmbulances() ([]models.Ambulance, error) {
	return s.ambulanceRepo.GetAllAmbulances()
}

// SearchAvailable lists available ambulances matching the query, cheapest
// base fare first.
func (s *AmbulanceService) SearchAvailable(q AmbulanceSearchQuery) ([]models.Ambulance, error) {
	return s.ambulanceRepo.SearchAvailable(q.AmbulanceType, q.Location)
}

// UpdateAmbulance updates an ambulance's record. The maintenance override
// cannot be applied while a request holds the ambulance.
func (s *AmbulanceService) UpdateAmbulance(id uint, input UpdateAmbulanceInput, actorID uint) (*models.Ambulance, error) {
	ambulance, err := s.ambulanceRepo.GetAmbulanceByID(id)
	if err != nil {
		return nil, err
	}

	if input.PlateNumber != "" && input.PlateNumber != ambulance.PlateNumber {
		if taken, err := s.ambulanceRepo.PlateNumberTaken(input.PlateNumber, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Validation("Validation Error", map[string]string{"plate_number": "is already registered"})
		}
		ambulance.PlateNumber = input.PlateNumber
	}
	if input.AmbulanceType != "" {
		ambulance.AmbulanceType = input.AmbulanceType
	}
	if input.BaseFare != nil {
		ambulance.BaseFare = *input.BaseFare
	}
	if input.PerKmFare != nil {
		ambulance.PerKmFare = *input.PerKmFare
	}
	if input.DriverName != "" {
		ambulance.DriverName = input.DriverName
	}
	if input.DriverPhone != "" {
		ambulance.DriverPhone = input.DriverPhone
	}
	if input.CurrentLocation != "" {
		ambulance.CurrentLocation = input.CurrentLocation
	}
	if input.Status != "" && input.Status != ambulance.Status {
		active, err := s.ambulanceRepo.HasActiveRequest(id)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, apperr.BusinessRule("Cannot change the status of an ambulance with an active request")
		}
		ambulance.Status = input.Status
	}

	if err := s.ambulanceRepo.UpdateAmbulance(ambulance); err != nil {
		return nil, err
	}

	s.log(actorID, "ambulance_update", ambulance.ID, fmt.Sprintf("Updated ambulance %s", ambulance.PlateNumber))
	return ambulance, nil
}

// DeleteAmbulance removes an ambulance. Ambulances with active requests
// cannot be deleted.
func (s *AmbulanceService) DeleteAmbulance(id uint, actorID uint) error {
	ambulance, err := s.ambulanceRepo.GetAmbulanceByID(id)
	if err != nil {
		return err
	}

	active, err := s.ambulanceRepo.HasActiveRequest(id)
	if err != nil {
		return err
	}
	if active {
		return apperr.BusinessRule("Cannot delete an ambulance with an active request")
	}

	if err := s.ambulanceRepo.DeleteAmbulance(id); err != nil {
		return err
	}

	s.log(actorID, "ambulance_delete", id, fmt.Sprintf("Deleted ambulance %s", ambulance.PlateNumber))
	return nil
}

func (s *AmbulanceService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.Ambulance{}.TableName(), &recordID, details)
}
