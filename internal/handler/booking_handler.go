package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking reserves a room for a stay
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input service.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Room booking created successfully", booking)
}

// GetBooking retrieves a booking by ID
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room booking retrieved successfully", booking)
}

// GetAllBookings lists bookings matching the query filters
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	var q service.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	bookings, err := h.bookingService.ListBookings(q)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room bookings retrieved successfully", gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// UpdateBooking applies field and status changes to a booking
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	booking, err := h.bookingService.UpdateBooking(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room booking updated successfully", booking)
}

// ConfirmBooking moves a pending booking to confirmed
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmBooking(id, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room booking confirmed successfully", booking)
}

// CheckinBooking marks the patient as checked in
func (h *BookingHandler) CheckinBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.CheckinBooking(id, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Check-in recorded successfully", booking)
}

// CheckoutBooking ends the stay and settles the final cost. The body is
// optional; it may override the checkout date and add extra charges.
func (h *BookingHandler) CheckoutBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.CheckoutInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BindError(c, err)
			return
		}
	}

	booking, err := h.bookingService.CheckoutBooking(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Checkout recorded successfully", booking)
}

// DeleteBooking removes a booking
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Room booking deleted successfully", nil)
}
