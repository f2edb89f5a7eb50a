package service

import (
	"fmt"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
)

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
	logs       ActivityLogger
}

func NewDoctorService(doctorRepo *repository.DoctorRepository, logs ActivityLogger) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		logs:       logs,
	}
}

// CreateDoctorInput is the request body for registering a doctor.
type CreateDoctorInput struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Specialization   string  `json:"specialization" binding:"required,max=100"`
	Phone            string  `json:"phone" binding:"omitempty,max=20"`
	Email            string  `json:"email" binding:"omitempty,email"`
	PracticeSchedule string  `json:"practice_schedule"`
	ConsultationFee  float64 `json:"consultation_fee" binding:"omitempty,gte=0"`
}

// UpdateDoctorInput is the request body for updating a doctor.
type UpdateDoctorInput struct {
	Name             string   `json:"name" binding:"omitempty,max=100"`
	Specialization   string   `json:"specialization" binding:"omitempty,max=100"`
	Phone            string   `json:"phone" binding:"omitempty,max=20"`
	Email            string   `json:"email" binding:"omitempty,email"`
	PracticeSchedule string   `json:"practice_schedule"`
	ConsultationFee  *float64 `json:"consultation_fee" binding:"omitempty,gte=0"`
	Status           string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateDoctor registers a new doctor.
func (s *DoctorService) CreateDoctor(input CreateDoctorInput, actorID uint) (*models.Doctor, error) {
	doctor := &models.Doctor{
		Name:             input.Name,
		Specialization:   input.Specialization,
		Phone:            input.Phone,
		Email:            input.Email,
		PracticeSchedule: input.PracticeSchedule,
		ConsultationFee:  input.ConsultationFee,
		Status:           models.DoctorActive,
		CreatedBy:        &actorID,
	}

	if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
		return nil, err
	}

	s.log(actorID, "doctor_create", doctor.ID, fmt.Sprintf("Created doctor %s (%s)", doctor.Name, doctor.Specialization))
	return doctor, nil
}

// GetDoctor retrieves a doctor by ID
func (s *DoctorService) GetDoctor(id uint) (*models.Doctor, error) {
	return s.doctorRepo.GetDoctorByID(id)
}

// ListDoctors retrieves doctors, optionally filtered by specialization
func (s *DoctorService) ListDoctors(specialization string) ([]models.Doctor, error) {
	return s.doctorRepo.GetAllDoctors(specialization)
}

// UpdateDoctor updates a doctor's record.
func (s *DoctorService) UpdateDoctor(id uint, input UpdateDoctorInput, actorID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		doctor.Name = input.Name
	}
	if input.Specialization != "" {
		doctor.Specialization = input.Specialization
	}
	if input.Phone != "" {
		doctor.Phone = input.Phone
	}
	if input.Email != "" {
		doctor.Email = input.Email
	}
	if input.PracticeSchedule != "" {
		doctor.PracticeSchedule = input.PracticeSchedule
	}
	if input.ConsultationFee != nil {
		doctor.ConsultationFee = *input.ConsultationFee
	}
	if input.Status != "" {
		doctor.Status = input.Status
	}

	if err := s.doctorRepo.UpdateDoctor(doctor); err != nil {
		return nil, err
	}

	s.log(actorID, "doctor_update", doctor.ID, fmt.Sprintf("Updated doctor %s", doctor.Name))
	return doctor, nil
}

// DeleteDoctor removes a doctor record.
func (s *DoctorService) DeleteDoctor(id uint, actorID uint) error {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return err
	}
	if err := s.doctorRepo.DeleteDoctor(id); err != nil {
		return err
	}
	s.log(actorID, "doctor_delete", id, fmt.Sprintf("Deleted doctor %s", doctor.Name))
	return nil
}

func (s *DoctorService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.Doctor{}.TableName(), &recordID, details)
}
