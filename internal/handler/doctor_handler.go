package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// CreateDoctor registers a new doctor
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input service.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	doctor, err := h.doctorService.CreateDoctor(input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Doctor created successfully", doctor)
}

// GetDoctor retrieves a doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctorService.GetDoctor(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Doctor retrieved successfully", doctor)
}

// GetAllDoctors retrieves doctors, optionally filtered by specialization
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors(c.Query("specialization"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Doctors retrieved successfully", gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// UpdateDoctor updates a doctor's record
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Doctor updated successfully", doctor)
}

// DeleteDoctor removes a doctor record
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.doctorService.DeleteDoctor(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Doctor deleted successfully", nil)
}
