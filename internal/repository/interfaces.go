package repository

import (
	"time"

	"healthcare-hub-backend/internal/models"
)

// BookingFilter narrows room booking listings.
type BookingFilter struct {
	Status      string
	UserID      uint
	RoomType    string
	CheckinDate *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
}

// RequestFilter narrows ambulance request listings.
type RequestFilter struct {
	Status      string
	RequestType string
	UserID      uint
	StartDate   *time.Time
	EndDate     *time.Time
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	Status        string
	PaymentMethod string
	ServiceType   string
	UserID        uint
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	Status   string
	Date     *time.Time
	DoctorID uint
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	UserID uint
	IsRead *bool
	Type   string
}

// BookingStore is the persistence surface of the room-booking workflow.
// Atomic runs fn against a transaction-bound store; booking status and room
// availability commit together or not at all.
type BookingStore interface {
	Atomic(fn func(BookingStore) error) error

	UserExists(id uint) (bool, error)
	AdminByID(id uint) (*models.Admin, error)
	AppointmentExists(id uint) (bool, error)

	RoomByID(id uint) (*models.Room, error)
	RoomForUpdate(id uint) (*models.Room, error)
	SetRoomStatus(id uint, status string) error

	HasConflict(roomID uint, checkin, checkout time.Time, excludeID uint) (bool, error)
	CountCreatedOn(day time.Time) (int64, error)
	Create(b *models.RoomBooking) error
	ByID(id uint) (*models.RoomBooking, error)
	Save(b *models.RoomBooking) error
	Delete(id uint) error
	List(f BookingFilter) ([]models.RoomBooking, error)
	AvailableRooms(checkin, checkout time.Time, roomType string) ([]models.Room, error)
}

// DispatchStore is the persistence surface of the ambulance-request
// workflow. The same atomicity contract as BookingStore applies to request
// status and ambulance availability.
type DispatchStore interface {
	Atomic(fn func(DispatchStore) error) error

	UserExists(id uint) (bool, error)
	AdminByID(id uint) (*models.Admin, error)

	AmbulanceByID(id uint) (*models.Ambulance, error)
	AmbulanceForUpdate(id uint) (*models.Ambulance, error)
	FirstAvailableForUpdate(ambulanceType string) (*models.Ambulance, error)
	SetAmbulanceStatus(id uint, status string) error
	UpdateAmbulance(id uint, updates map[string]interface{}) error

	CountCreatedOn(day time.Time) (int64, error)
	Create(req *models.AmbulanceRequest) error
	ByID(id uint) (*models.AmbulanceRequest, error)
	Save(req *models.AmbulanceRequest) error
	Delete(id uint) error
	List(f RequestFilter) ([]models.AmbulanceRequest, error)
	ActiveEmergencies() ([]models.AmbulanceRequest, error)
}

// PaymentStore is the persistence surface of the payment workflow.
type PaymentStore interface {
	Atomic(fn func(PaymentStore) error) error

	UserExists(id uint) (bool, error)
	AdminByID(id uint) (*models.Admin, error)
	AppointmentExists(id uint) (bool, error)
	BookingExists(id uint) (bool, error)
	RequestExists(id uint) (bool, error)

	Create(p *models.Payment) error
	ByID(id uint) (*models.Payment, error)
	ForUpdate(id uint) (*models.Payment, error)
	Save(p *models.Payment) error
	Delete(id uint) error
	List(f PaymentFilter) ([]models.Payment, error)
}

// AppointmentStore is the persistence surface of the appointment workflow.
type AppointmentStore interface {
	Atomic(fn func(AppointmentStore) error) error

	UserExists(id uint) (bool, error)
	AdminByID(id uint) (*models.Admin, error)
	DoctorExists(id uint) (bool, error)

	CountCreatedOn(day time.Time) (int64, error)
	Create(a *models.Appointment) error
	ByID(id uint) (*models.Appointment, error)
	Save(a *models.Appointment) error
	Delete(id uint) error
	List(f AppointmentFilter) ([]models.Appointment, error)
}
