package models

import "time"

// Ambulance statuses. Operating is derived from an assigned request in a
// non-terminal state; maintenance is an explicit override.
const (
	AmbulanceAvailable   = "available"
	AmbulanceOperating   = "operating"
	AmbulanceMaintenance = "maintenance"
)

// Ambulance types
const (
	AmbulanceTypeEmergency = "emergency"
	AmbulanceTypeTransport = "transport"
	AmbulanceTypeICU       = "icu"
)

// Ambulance represents the ambulances table
type Ambulance struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PlateNumber     string    `gorm:"size:20;uniqueIndex;not null" json:"plate_number"`
	AmbulanceType   string    `gorm:"type:enum('emergency','transport','icu');not null" json:"ambulance_type"`
	BaseFare        float64   `gorm:"type:decimal(12,2);not null" json:"base_fare"`
	PerKmFare       float64   `gorm:"type:decimal(12,2);not null" json:"per_km_fare"`
	Status          string    `gorm:"type:enum('available','operating','maintenance');default:'available'" json:"status"`
	DriverName      string    `gorm:"size:100" json:"driver_name,omitempty"`
	DriverPhone     string    `gorm:"size:20" json:"driver_phone,omitempty"`
	CurrentLocation string    `gorm:"size:255" json:"current_location,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Ambulance model
func (Ambulance) TableName() string {
	return "ambulances"
}
