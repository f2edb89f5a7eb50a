package models

import "time"

// Doctor statuses
const (
	DoctorActive   = "active"
	DoctorInactive = "inactive"
)

// Doctor represents the doctors table
type Doctor struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Specialization   string    `gorm:"size:100;not null" json:"specialization"`
	Phone            string    `gorm:"size:20" json:"phone,omitempty"`
	Email            string    `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PracticeSchedule string    `gorm:"type:text" json:"practice_schedule,omitempty"`
	ConsultationFee  float64   `gorm:"type:decimal(12,2);default:0" json:"consultation_fee"`
	Status           string    `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
	CreatedBy        *uint     `gorm:"index" json:"created_by,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
