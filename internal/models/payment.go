package models

import (
	"time"

	"healthcare-hub-backend/pkg/apperr"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Payment methods
const (
	PayCash      = "cash"
	PayInsurance = "insurance"
	PayBPJS      = "bpjs"
)

// Billable service kinds
const (
	ServiceRefAppointment = "appointment"
	ServiceRefRoomBooking = "room_booking"
	ServiceRefAmbulance   = "ambulance"
)

// ServiceRef points a payment at exactly one billable service record.
// Columns stay as three nullable foreign keys, but construction goes
// through NewServiceRef so only one can ever be set.
type ServiceRef struct {
	ServiceType        string `gorm:"size:20;not null" json:"service_type"`
	AppointmentID      *uint  `gorm:"index" json:"appointment_id,omitempty"`
	RoomBookingID      *uint  `gorm:"index" json:"room_booking_id,omitempty"`
	AmbulanceRequestID *uint  `gorm:"index" json:"ambulance_request_id,omitempty"`
}

// NewServiceRef builds a reference of the given kind to the given record.
func NewServiceRef(serviceType string, id uint) (ServiceRef, error) {
	ref := ServiceRef{ServiceType: serviceType}
	switch serviceType {
	case ServiceRefAppointment:
		ref.AppointmentID = &id
	case ServiceRefRoomBooking:
		ref.RoomBookingID = &id
	case ServiceRefAmbulance:
		ref.AmbulanceRequestID = &id
	default:
		return ServiceRef{}, apperr.Validation("Validation Error", map[string]string{
			"service_type": "must be one of appointment, room_booking, ambulance",
		})
	}
	return ref, nil
}

// Validate enforces the exactly-one-reference invariant.
func (r ServiceRef) Validate() error {
	count := 0
	if r.AppointmentID != nil {
		count++
	}
	if r.RoomBookingID != nil {
		count++
	}
	if r.AmbulanceRequestID != nil {
		count++
	}
	if count != 1 {
		return apperr.BusinessRule("Exactly one reference ID (appointment_id, room_booking_id, or ambulance_request_id) must be provided")
	}
	return nil
}

// Payment represents the payments table
type Payment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	ServiceRef    `gorm:"embedded"`
	Amount        float64    `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string     `gorm:"type:enum('cash','insurance','bpjs');not null" json:"payment_method"`
	ProcessorRef  string     `gorm:"size:100" json:"processor_ref,omitempty"`
	ReceiptURL    string     `gorm:"size:255" json:"receipt_url,omitempty"`
	Status        string     `gorm:"type:enum('pending','paid','failed','refunded');default:'pending'" json:"status"`
	TransactionID string     `gorm:"size:30;uniqueIndex;not null" json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	Processed     ActorRef   `gorm:"embedded;embeddedPrefix:processed_" json:"processed"`
	AdminNotes    string     `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt     time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
