package models

import "time"

// Admin roles
const (
	AdminRoleSuperadmin = "superadmin"
	AdminRoleAdmin      = "admin"
	AdminRoleStaff      = "staff"
)

// Admin represents the admins table
type Admin struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Phone        string     `gorm:"size:20" json:"phone,omitempty"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"type:enum('superadmin','admin','staff');default:'staff'" json:"role"`
	Department   string     `gorm:"size:100" json:"department,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Admin model
func (Admin) TableName() string {
	return "admins"
}

// RefreshToken represents the refresh_tokens table for admin sessions
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`

	Admin Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// AdminActivityLog represents the admin_activity_logs table
// Used for tracking administrative mutations
type AdminActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdminID     *uint     `gorm:"index" json:"admin_id"`
	Action      string    `gorm:"size:100;not null" json:"action"`
	TargetTable string    `gorm:"column:table_name;size:50" json:"table_name,omitempty"`
	RecordID    *uint     `json:"record_id,omitempty"`
	Details     string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for AdminActivityLog model
func (AdminActivityLog) TableName() string {
	return "admin_activity_logs"
}
