package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// CreateAppointment books a consultation slot
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var input service.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Appointment created successfully", appointment)
}

// GetAppointment retrieves an appointment by ID
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentService.GetAppointment(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment retrieved successfully", appointment)
}

// GetAllAppointments lists appointments matching the query filters
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	var q service.AppointmentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	appointments, err := h.appointmentService.ListAppointments(q)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointments retrieved successfully", gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// ConfirmAppointment moves a pending appointment to confirmed
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentService.ConfirmAppointment(id, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment confirmed successfully", appointment)
}

// UpdateAppointment applies field and status changes to an appointment
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment updated successfully", appointment)
}

// DeleteAppointment removes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment deleted successfully", nil)
}
