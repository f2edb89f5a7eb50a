package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService    *service.RoomService
	bookingService *service.BookingService
}

func NewRoomHandler(roomService *service.RoomService, bookingService *service.BookingService) *RoomHandler {
	return &RoomHandler{
		roomService:    roomService,
		bookingService: bookingService,
	}
}

// CreateRoom registers a new room
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input service.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	room, err := h.roomService.CreateRoom(input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Room created successfully", room)
}

// GetRoom retrieves a room by ID
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room retrieved successfully", room)
}

// GetAllRooms retrieves all rooms
func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Rooms retrieved successfully", gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// SearchAvailableRooms lists rooms free for a stay with cost estimates
func (h *RoomHandler) SearchAvailableRooms(c *gin.Context) {
	var q service.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	rooms, err := h.bookingService.AvailableRooms(q)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Available rooms retrieved successfully", gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// UpdateRoom updates a room's record
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	room, err := h.roomService.UpdateRoom(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room updated successfully", room)
}

// DeleteRoom removes a room
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room deleted successfully", nil)
}
