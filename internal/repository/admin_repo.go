package repository

import (
	"errors"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetAllAdmins retrieves all admins
func (r *AdminRepository) GetAllAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Order("created_at DESC").Find(&admins).Error
	return admins, err
}

// GetAdminByID retrieves an admin by ID
func (r *AdminRepository) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin")
		}
		return nil, err
	}
	return &admin, nil
}

// FindAdminByUsername finds an active admin by username
func (r *AdminRepository) FindAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("username = ? AND is_active = ?", username, true).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin")
		}
		return nil, err
	}
	return &admin, nil
}

// UsernameTaken reports whether another admin already uses the username
func (r *AdminRepository) UsernameTaken(username string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Admin{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// CreateAdmin creates a new admin
func (r *AdminRepository) CreateAdmin(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// UpdateAdmin updates an existing admin
func (r *AdminRepository) UpdateAdmin(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// DeleteAdmin removes an admin
func (r *AdminRepository) DeleteAdmin(id uint) error {
	return r.db.Delete(&models.Admin{}, id).Error
}

// TouchLastLogin stamps the admin's last login time
func (r *AdminRepository) TouchLastLogin(id uint) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

// CreateRefreshToken creates a new refresh token
func (r *AdminRepository) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindRefreshTokenByHash finds a live refresh token by its hash
func (r *AdminRepository) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ? AND revoked = ?", hash, false).
		Preload("Admin").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("refresh token not found or revoked")
		}
		return nil, err
	}
	return &token, nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked by its hash
func (r *AdminRepository) RevokeRefreshTokenByHash(hash string) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}
