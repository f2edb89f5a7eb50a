package models

import "time"

// Room booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCheckin   = "checkin"
	BookingCheckout  = "checkout"
	BookingCancelled = "cancelled"
)

// RoomBooking represents the room_bookings table
type RoomBooking struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	RoomID          uint       `gorm:"not null;index" json:"room_id"`
	AppointmentID   *uint      `gorm:"index" json:"appointment_id,omitempty"`
	CheckinDate     time.Time  `gorm:"type:date;not null" json:"checkin_date"`
	CheckoutDate    *time.Time `gorm:"type:date" json:"checkout_date,omitempty"`
	SpecialRequests string     `gorm:"type:text" json:"special_requests,omitempty"`
	PaymentMethod   string     `gorm:"type:enum('cash','insurance','bpjs');not null" json:"payment_method"`
	TotalCost       float64    `gorm:"type:decimal(12,2);default:0" json:"total_cost"`
	Status          string     `gorm:"type:enum('pending','confirmed','checkin','checkout','cancelled');default:'pending'" json:"status"`
	BookingNumber   string     `gorm:"size:20;uniqueIndex;not null" json:"booking_number"`
	Confirmed       ActorRef   `gorm:"embedded;embeddedPrefix:confirmed_" json:"confirmed"`
	CheckedIn       ActorRef   `gorm:"embedded;embeddedPrefix:checkin_" json:"checked_in"`
	CheckedOut      ActorRef   `gorm:"embedded;embeddedPrefix:checkout_" json:"checked_out"`
	AdminNotes      string     `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room        Room         `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

// TableName specifies the table name for RoomBooking model
func (RoomBooking) TableName() string {
	return "room_bookings"
}

// EffectiveCheckout returns the checkout date, defaulting to checkin+1 day
// when none was supplied.
func (b *RoomBooking) EffectiveCheckout() time.Time {
	if b.CheckoutDate != nil {
		return *b.CheckoutDate
	}
	return b.CheckinDate.AddDate(0, 0, 1)
}
