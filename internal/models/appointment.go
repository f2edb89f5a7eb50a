package models

import "time"

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment service types
const (
	ServiceOutpatient = "outpatient"
	ServiceEmergency  = "emergency"
)

// Appointment represents the appointments table
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	DoctorID        uint      `gorm:"not null;index" json:"doctor_id"`
	ServiceType     string    `gorm:"type:enum('outpatient','emergency');not null" json:"service_type"`
	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null" json:"appointment_time"`
	Complaint       string    `gorm:"type:text" json:"complaint,omitempty"`
	PaymentMethod   string    `gorm:"type:enum('cash','insurance','bpjs');not null" json:"payment_method"`
	TotalCost       float64   `gorm:"type:decimal(12,2);not null" json:"total_cost"`
	Status          string    `gorm:"type:enum('pending','confirmed','completed','cancelled');default:'pending'" json:"status"`
	TicketNumber    string    `gorm:"size:20;uniqueIndex;not null" json:"ticket_number"`
	Confirmed       ActorRef  `gorm:"embedded;embeddedPrefix:confirmed_" json:"confirmed"`
	AdminNotes      string    `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
