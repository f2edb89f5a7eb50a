package models

import "time"

// Notification types
const (
	NotifyAppointment = "appointment"
	NotifyPayment     = "payment"
	NotifyAmbulance   = "ambulance"
	NotifyRoomBooking = "room_booking"
	NotifyGeneral     = "general"
)

// Notification represents the notifications table
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	AdminID   *uint     `gorm:"index" json:"admin_id,omitempty"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"type:enum('appointment','payment','ambulance','room_booking','general');not null" json:"type"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for Notification model
func (Notification) TableName() string {
	return "notifications"
}
