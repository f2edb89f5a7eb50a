package handler

import (
	"strconv"

	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// CreateAdmin creates a new admin account
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var input service.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	admin, err := h.adminService.CreateAdmin(input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Admin created successfully", admin)
}

// GetAdmin retrieves an admin by ID
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	admin, err := h.adminService.GetAdmin(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Admin retrieved successfully", admin)
}

// GetAllAdmins retrieves all admins
func (h *AdminHandler) GetAllAdmins(c *gin.Context) {
	admins, err := h.adminService.ListAdmins()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Admins retrieved successfully", gin.H{
		"admins": admins,
		"count":  len(admins),
	})
}

// UpdateAdmin updates an admin account
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	admin, err := h.adminService.UpdateAdmin(id, input, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Admin updated successfully", admin)
}

// DeleteAdmin removes an admin account
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteAdmin(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Admin deleted successfully", nil)
}

// GetActivityLogs lists the recent actions of one admin
func (h *AdminHandler) GetActivityLogs(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.adminService.ActivityLogs(id, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Activity logs retrieved successfully", gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}
