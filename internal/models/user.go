package models

import "time"

// User represents the users (patients) table
type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	NationalID        string     `gorm:"size:20;uniqueIndex;not null" json:"national_id"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	Email             string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone             string     `gorm:"size:20" json:"phone,omitempty"`
	DateOfBirth       *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address           string     `gorm:"type:text" json:"address,omitempty"`
	Gender            string     `gorm:"type:enum('male','female')" json:"gender,omitempty"`
	BPJSNumber        string     `gorm:"size:20" json:"bpjs_number,omitempty"`
	InsuranceProvider string     `gorm:"size:100" json:"insurance_provider,omitempty"`
	PasswordHash      string     `gorm:"size:255;not null" json:"-"`
	CreatedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
