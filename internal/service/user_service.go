package service

import (
	"fmt"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
	"healthcare-hub-backend/pkg/utils"
)

type UserService struct {
	userRepo *repository.UserRepository
	logs     ActivityLogger
}

func NewUserService(userRepo *repository.UserRepository, logs ActivityLogger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logs:     logs,
	}
}

// CreateUserInput is the request body for registering a patient.
type CreateUserInput struct {
	NationalID        string `json:"national_id" binding:"required,min=8,max=20"`
	Name              string `json:"name" binding:"required,max=100"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth       string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Address           string `json:"address"`
	Gender            string `json:"gender" binding:"omitempty,oneof=male female"`
	BPJSNumber        string `json:"bpjs_number" binding:"omitempty,max=20"`
	InsuranceProvider string `json:"insurance_provider" binding:"omitempty,max=100"`
	Password          string `json:"password" binding:"required,min=8"`
}

// UpdateUserInput is the request body for updating a patient.
type UpdateUserInput struct {
	Name              string `json:"name" binding:"omitempty,max=100"`
	Email             string `json:"email" binding:"omitempty,email"`
	Phone             string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth       string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Address           string `json:"address"`
	Gender            string `json:"gender" binding:"omitempty,oneof=male female"`
	BPJSNumber        string `json:"bpjs_number" binding:"omitempty,max=20"`
	InsuranceProvider string `json:"insurance_provider" binding:"omitempty,max=100"`
	Password          string `json:"password" binding:"omitempty,min=8"`
}

// CreateUser registers a new patient.
func (s *UserService) CreateUser(input CreateUserInput, actorID uint) (*models.User, error) {
	if taken, err := s.userRepo.EmailTaken(input.Email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Validation("Validation Error", map[string]string{"email": "is already registered"})
	}
	if taken, err := s.userRepo.NationalIDTaken(input.NationalID, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Validation("Validation Error", map[string]string{"national_id": "is already registered"})
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		NationalID:        input.NationalID,
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		Address:           input.Address,
		Gender:            input.Gender,
		BPJSNumber:        input.BPJSNumber,
		InsuranceProvider: input.InsuranceProvider,
		PasswordHash:      passwordHash,
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, input.DateOfBirth)
		if err != nil {
			return nil, apperr.Validation("Validation Error", map[string]string{"date_of_birth": "must be a valid date"})
		}
		user.DateOfBirth = &dob
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log(actorID, "user_create", user.ID, fmt.Sprintf("Created user %s (%s)", user.Name, user.Email))
	return user, nil
}

// GetUser retrieves a patient by ID
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetUserByID(id)
}

// ListUsers retrieves all patients
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAllUsers()
}

// UpdateUser updates a patient's profile.
func (s *UserService) UpdateUser(id uint, input UpdateUserInput, actorID uint) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		if taken, err := s.userRepo.EmailTaken(input.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Validation("Validation Error", map[string]string{"email": "is already registered"})
		}
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, input.DateOfBirth)
		if err != nil {
			return nil, apperr.Validation("Validation Error", map[string]string{"date_of_birth": "must be a valid date"})
		}
		user.DateOfBirth = &dob
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.BPJSNumber != "" {
		user.BPJSNumber = input.BPJSNumber
	}
	if input.InsuranceProvider != "" {
		user.InsuranceProvider = input.InsuranceProvider
	}
	if input.Password != "" {
		passwordHash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}

	s.log(actorID, "user_update", user.ID, fmt.Sprintf("Updated user %s", user.Name))
	return user, nil
}

// DeleteUser removes a patient record.
func (s *UserService) DeleteUser(id uint, actorID uint) error {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(id); err != nil {
		return err
	}
	s.log(actorID, "user_delete", id, fmt.Sprintf("Deleted user %s", user.Name))
	return nil
}

func (s *UserService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.User{}.TableName(), &recordID, details)
}
