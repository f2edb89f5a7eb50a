package models

import "time"

// Ambulance request statuses
const (
	RequestPending    = "pending"
	RequestDispatched = "dispatched"
	RequestOnWay      = "on_way"
	RequestArrived    = "arrived"
	RequestCompleted  = "completed"
	RequestCancelled  = "cancelled"
)

// Ambulance request types
const (
	RequestTypeEmergency = "emergency"
	RequestTypeScheduled = "scheduled"
)

// AmbulanceRequest represents the ambulance_requests table
type AmbulanceRequest struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	AmbulanceID      *uint     `gorm:"index" json:"ambulance_id,omitempty"`
	RequestType      string    `gorm:"type:enum('emergency','scheduled');not null" json:"request_type"`
	PickupLocation   string    `gorm:"size:255;not null" json:"pickup_location"`
	Destination      string    `gorm:"size:255;not null" json:"destination"`
	PatientCondition string    `gorm:"type:text" json:"patient_condition,omitempty"`
	RequestDate      time.Time `gorm:"type:date;not null" json:"request_date"`
	RequestTime      string    `gorm:"size:5" json:"request_time,omitempty"`
	PaymentMethod    string    `gorm:"type:enum('cash','insurance','bpjs');not null" json:"payment_method"`
	DistanceKm       *float64  `gorm:"type:decimal(8,2)" json:"distance_km,omitempty"`
	TotalCost        *float64  `gorm:"type:decimal(12,2)" json:"total_cost,omitempty"`
	Status           string    `gorm:"type:enum('pending','dispatched','on_way','arrived','completed','cancelled');default:'pending'" json:"status"`
	RequestNumber    string    `gorm:"size:20;uniqueIndex;not null" json:"request_number"`
	Dispatched       ActorRef  `gorm:"embedded;embeddedPrefix:dispatched_" json:"dispatched"`
	AdminNotes       string    `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User      User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Ambulance *Ambulance `gorm:"foreignKey:AmbulanceID" json:"ambulance,omitempty"`
}

// TableName specifies the table name for AmbulanceRequest model
func (AmbulanceRequest) TableName() string {
	return "ambulance_requests"
}

// Terminal reports whether the request can no longer progress.
func (r *AmbulanceRequest) Terminal() bool {
	return r.Status == RequestCompleted || r.Status == RequestCancelled
}
