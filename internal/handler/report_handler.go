package handler

import (
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetDashboard returns the headline operational counters
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reportService.Dashboard()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", stats)
}

// GetDailyReport returns one day's operational summary
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	report, err := h.reportService.Daily(c.Query("date"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Daily report retrieved successfully", report)
}

// GetOccupancyReport returns the per-room-type utilization report
func (h *ReportHandler) GetOccupancyReport(c *gin.Context) {
	report, err := h.reportService.Occupancy(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, "Occupancy report retrieved successfully", report)
}
