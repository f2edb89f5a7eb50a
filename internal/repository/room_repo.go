package repository

import (
	"errors"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves all rooms ordered by type and number
func (r *RoomRepository) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("room_type ASC, room_number ASC").Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Room")
		}
		return nil, err
	}
	return &room, nil
}

// RoomNumberTaken reports whether another room already uses the number
func (r *RoomRepository) RoomNumberTaken(roomNumber string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Room{}).Where("room_number = ?", roomNumber)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// HasActiveBooking reports whether the room holds a non-terminal booking
func (r *RoomRepository) HasActiveBooking(roomID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.RoomBooking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", []string{models.BookingCancelled, models.BookingCheckout}).
		Count(&count).Error
	return count > 0, err
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// UpdateRoom updates an existing room
func (r *RoomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom removes a room
func (r *RoomRepository) DeleteRoom(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}
