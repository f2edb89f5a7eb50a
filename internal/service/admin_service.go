package service

import (
	"fmt"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
	"healthcare-hub-backend/pkg/utils"
)

type AdminService struct {
	adminRepo *repository.AdminRepository
	logRepo   *repository.ActivityLogRepository
}

func NewAdminService(adminRepo *repository.AdminRepository, logRepo *repository.ActivityLogRepository) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		logRepo:   logRepo,
	}
}

// CreateAdminInput is the request body for creating an admin account.
type CreateAdminInput struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=superadmin admin staff"`
	Department string `json:"department" binding:"omitempty,max=100"`
}

// UpdateAdminInput is the request body for updating an admin account.
type UpdateAdminInput struct {
	Email      string `json:"email" binding:"omitempty,email"`
	Name       string `json:"name" binding:"omitempty,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Password   string `json:"password" binding:"omitempty,min=8"`
	Role       string `json:"role" binding:"omitempty,oneof=superadmin admin staff"`
	Department string `json:"department" binding:"omitempty,max=100"`
	IsActive   *bool  `json:"is_active"`
}

// CreateAdmin creates a new admin account.
func (s *AdminService) CreateAdmin(input CreateAdminInput, actorID uint) (*models.Admin, error) {
	if taken, err := s.adminRepo.UsernameTaken(input.Username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Validation("Validation Error", map[string]string{"username": "is already taken"})
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username:     input.Username,
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Role:         input.Role,
		Department:   input.Department,
		IsActive:     true,
	}

	if err := s.adminRepo.CreateAdmin(admin); err != nil {
		return nil, err
	}

	s.log(actorID, "admin_create", admin.ID, fmt.Sprintf("Created admin %s (role: %s)", admin.Username, admin.Role))
	return admin, nil
}

// GetAdmin retrieves an admin by ID
func (s *AdminService) GetAdmin(id uint) (*models.Admin, error) {
	return s.adminRepo.GetAdminByID(id)
}

// ListAdmins retrieves all admins
func (s *AdminService) ListAdmins() ([]models.Admin, error) {
	return s.adminRepo.GetAllAdmins()
}

// UpdateAdmin updates an admin account.
func (s *AdminService) UpdateAdmin(id uint, input UpdateAdminInput, actorID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		admin.Email = input.Email
	}
	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Phone != "" {
		admin.Phone = input.Phone
	}
	if input.Role != "" {
		admin.Role = input.Role
	}
	if input.Department != "" {
		admin.Department = input.Department
	}
	if input.IsActive != nil {
		admin.IsActive = *input.IsActive
	}
	if input.Password != "" {
		passwordHash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.PasswordHash = passwordHash
	}

	if err := s.adminRepo.UpdateAdmin(admin); err != nil {
		return nil, err
	}

	s.log(actorID, "admin_update", admin.ID, fmt.Sprintf("Updated admin %s", admin.Username))
	return admin, nil
}

// DeleteAdmin removes an admin account. Admins cannot delete themselves.
func (s *AdminService) DeleteAdmin(id uint, actorID uint) error {
	if id == actorID {
		return apperr.BusinessRule("Cannot delete your own admin account")
	}
	admin, err := s.adminRepo.GetAdminByID(id)
	if err != nil {
		return err
	}
	if err := s.adminRepo.DeleteAdmin(id); err != nil {
		return err
	}
	s.log(actorID, "admin_delete", id, fmt.Sprintf("Deleted admin %s", admin.Username))
	return nil
}

// ActivityLogs lists the recent actions of one admin.
func (s *AdminService) ActivityLogs(adminID uint, limit int) ([]models.AdminActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.logRepo.LogsByAdmin(adminID, limit)
}

func (s *AdminService) log(actorID uint, action string, recordID uint, details string) {
	if s.logRepo == nil {
		return
	}
	_ = s.logRepo.CreateLog(&actorID, action, models.Admin{}.TableName(), &recordID, details)
}
