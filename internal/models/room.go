package models

import "time"

// Room statuses. Occupied is derived from non-terminal bookings;
// maintenance is an explicit override.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

// Room types
const (
	RoomTypeVIP    = "vip"
	RoomTypeClass1 = "class_1"
	RoomTypeClass2 = "class_2"
	RoomTypeClass3 = "class_3"
)

// Room represents the rooms table
type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomNumber string    `gorm:"size:20;uniqueIndex;not null" json:"room_number"`
	RoomType   string    `gorm:"type:enum('vip','class_1','class_2','class_3');not null" json:"room_type"`
	DailyRate  float64   `gorm:"type:decimal(12,2);not null" json:"daily_rate"`
	Facilities string    `gorm:"type:text" json:"facilities,omitempty"`
	Status     string    `gorm:"type:enum('available','occupied','maintenance');default:'available'" json:"status"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// AvailableRoom is a room enriched with the estimated cost for a requested
// stay, returned by the availability search.
type AvailableRoom struct {
	Room
	EstimatedDays      int     `json:"estimated_days"`
	EstimatedTotalCost float64 `json:"estimated_total_cost"`
}
