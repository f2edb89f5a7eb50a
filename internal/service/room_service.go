package service

import (
	"fmt"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
)

type RoomService struct {
	roomRepo *repository.RoomRepository
	logs     ActivityLogger
}

func NewRoomService(roomRepo *repository.RoomRepository, logs ActivityLogger) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		logs:     logs,
	}
}

// CreateRoomInput is the request body for registering a room.
type CreateRoomInput struct {
	RoomNumber string  `json:"room_number" binding:"required,max=20"`
	RoomType   string  `json:"room_type" binding:"required,oneof=vip class_1 class_2 class_3"`
	DailyRate  float64 `json:"daily_rate" binding:"required,gt=0"`
	Facilities string  `json:"facilities"`
}

// UpdateRoomInput is the request body for updating a room. Status here only
// toggles the maintenance override; occupancy is driven by bookings.
type UpdateRoomInput struct {
	RoomNumber string   `json:"room_number" binding:"omitempty,max=20"`
	RoomType   string   `json:"room_type" binding:"omitempty,oneof=vip class_1 class_2 class_3"`
	DailyRate  *float64 `json:"daily_rate" binding:"omitempty,gt=0"`
	Facilities string   `json:"facilities"`
	Status     string   `json:"status" binding:"omitempty,oneof=available maintenance"`
}

// CreateRoom registers a new room.
func (s *RoomService) CreateRoom(input CreateRoomInput, actorID uint) (*models.Room, error) {
	if taken, err := s.roomRepo.RoomNumberTaken(input.RoomNumber, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Validation("Validation Error", map[string]string{"room_number": "is already registered"})
	}

	room := &models.Room{
		RoomNumber: input.RoomNumber,
		RoomType:   input.RoomType,
		DailyRate:  input.DailyRate,
		Facilities: input.Facilities,
		Status:     models.RoomAvailable,
	}

	if err := s.roomRepo.CreateRoom(room); err != nil {
		return nil, err
	}

	s.log(actorID, "room_create", room.ID, fmt.Sprintf("Created room %s (%s)", room.RoomNumber, room.RoomType))
	return room, nil
}

// GetRoom retrieves a room by ID
func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	return s.roomRepo.GetRoomByID(id)
}

// ListRooms retrieves all rooms
func (s *RoomService) ListRooms() ([]models.Room, error) {
	return s.roomRepo.GetAllRooms()
}

// UpdateRoom updates a room's record. The maintenance override cannot be
// applied while a booking occupies the room, and a room cannot be forced
// back to available while an active booking holds it.
func (s *RoomService) UpdateRoom(id uint, input UpdateRoomInput, actorID uint) (*models.Room, error) {
	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	if input.RoomNumber != "" && input.RoomNumber != room.RoomNumber {
		if taken, err := s.roomRepo.RoomNumberTaken(input.RoomNumber, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Validation("Validation Error", map[string]string{"room_number": "is already registered"})
		}
		room.RoomNumber = input.RoomNumber
	}
	if input.RoomType != "" {
		room.RoomType = input.RoomType
	}
	if input.DailyRate != nil {
		room.DailyRate = *input.DailyRate
	}
	if input.Facilities != "" {
		room.Facilities = input.Facilities
	}
	if input.Status != "" && input.Status != room.Status {
		active, err := s.roomRepo.HasActiveBooking(id)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, apperr.BusinessRule("Cannot change the status of a room with an active booking")
		}
		room.Status = input.Status
	}

	if err := s.roomRepo.UpdateRoom(room); err != nil {
		return nil, err
	}

	s.log(actorID, "room_update", room.ID, fmt.Sprintf("Updated room %s", room.RoomNumber))
	return room, nil
}

// DeleteRoom removes a room. Rooms with active bookings cannot be deleted.
func (s *RoomService) DeleteRoom(id uint, actorID uint) error {
	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		return err
	}

	active, err := s.roomRepo.HasActiveBooking(id)
	if err != nil {
		return err
	}
	if active {
		return apperr.BusinessRule("Cannot delete a room with an active booking")
	}

	if err := s.roomRepo.DeleteRoom(id); err != nil {
		return err
	}

	s.log(actorID, "room_delete", id, fmt.Sprintf("Deleted room %s", room.RoomNumber))
	return nil
}

func (s *RoomService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.Room{}.TableName(), &recordID, details)
}
