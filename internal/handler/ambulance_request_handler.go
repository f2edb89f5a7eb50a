package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AmbulanceRequestHandler struct {
	requestService *service.AmbulanceRequestService
}

func NewAmbulanceRequestHandler(requestService *service.AmbulanceRequestService) *AmbulanceRequestHandler {
	return &AmbulanceRequestHandler{
		requestService: requestService,
	}
}

// CreateRequest registers an ambulance request
func (h *AmbulanceRequestHandler) CreateRequest(c *gin.Context) {
	var input service.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	request, err := h.requestService.CreateRequest(input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ambulance request created successfully", request)
}

// GetRequest retrieves a request by ID
func (h *AmbulanceRequestHandler) GetRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	request, err := h.requestService.GetRequest(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance request retrieved successfully", request)
}

// GetAllRequests lists requests matching the query filters
func (h *AmbulanceRequestHandler) GetAllRequests(c *gin.Context) {
	var q service.RequestListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BindError(c, err)
		return
	}

	requests, err := h.requestService.ListRequests(q)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance requests retrieved successfully", gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// GetActiveEmergencies lists emergency requests still in flight
func (h *AmbulanceRequestHandler) GetActiveEmergencies(c *gin.Context) {
	requests, err := h.requestService.ActiveEmergencies()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Active emergencies retrieved successfully", gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// DispatchRequest assigns an ambulance to a pending request
func (h *AmbulanceRequestHandler) DispatchRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.DispatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	request, err := h.requestService.DispatchRequest(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance dispatched successfully", request)
}

// UpdateRequestStatus advances a request along its lifecycle
func (h *AmbulanceRequestHandler) UpdateRequestStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.RequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	request, err := h.requestService.UpdateRequestStatus(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance request status updated successfully", request)
}

// UpdateRequest edits a request's details
func (h *AmbulanceRequestHandler) UpdateRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	request, err := h.requestService.UpdateRequest(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance request updated successfully", request)
}

// DeleteRequest removes a request
func (h *AmbulanceRequestHandler) DeleteRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.requestService.DeleteRequest(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ambulance request deleted successfully", nil)
}
