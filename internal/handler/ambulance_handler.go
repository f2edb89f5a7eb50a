package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AmbulanceHandler struct {
	ambulanceService *service.AmbulanceService
}

func NewAmbulanceHandler(ambulanceService *service.AmbulanceService) *AmbulanceHandler {
	return &AmbulanceHandler{
		ambulanceService: ambulanceService,
	}
}

// CreateAmbulance registers a new ambulance
func (h *AmbulanceHandler) CreateAmbulance(c *gin.Context) {
	var input service.CreateAmbulanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	ambulance, err := h.ambulanceService.CreateAmbulance(input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ambulance created successfully", ambulance)
}

// GetAmbulance retrieves an ambulance by ID
func (h *AmbulanceHandler) GetAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ambulance, err := h.ambulanceService.GetAmbulance(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance retrieved successfully", ambulance)
}

// GetAllAmbulances retrieves all ambulances
func (h *AmbulanceHandler) GetAllAmbulances(c *gin.Context) {
	ambulances, err := h.ambulanceService.ListAmbulances()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulances retrieved successfully", gin.H{
		"ambulances": ambulances,
		"count":      len(ambulances),
	})
}

// SearchAvailableAmbulances lists available ambulances matching the query
func (h *AmbulanceHandler) SearchAvailableAmbulances(c *gin.Context) {
	var q service.AmbulanceSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	ambulances, err := h.ambulanceService.SearchAvailable(q)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Available ambulances retrieved successfully", gin.H{
		"ambulances": ambulances,
		"count":      len(ambulances),
	})
}

// UpdateAmbulance updates an ambulance's record
func (h *AmbulanceHandler) UpdateAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateAmbulanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	ambulance, err := h.ambulanceService.UpdateAmbulance(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance updated successfully", ambulance)
}

// DeleteAmbulance removes an ambulance
func (h *AmbulanceHandler) DeleteAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ambulanceService.DeleteAmbulance(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance deleted successfully", nil)
}
