package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/services"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// StatsHandler holds the stats and report services.
type StatsHandler struct {
	statsService  services.StatsService
	reportService services.ReportService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(ss services.StatsService, rs services.ReportService) *StatsHandler {
	return &StatsHandler{statsService: ss, reportService: rs}
}

// GetDailyStats handles the dashboard summary over a date range.
func (h *StatsHandler) GetDailyStats(c *gin.Context) {
	req := services.StatsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	summary, err := h.statsService.GetDailyStats(req)
	if err != nil {
		utils.LogError(err, "GetDailyStats: Error from statsService.GetDailyStats")
		if errors.Is(err, services.ErrInvalidDateRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch statistics.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportBookings streams an XLSX workbook of bookings over a date range.
func (h *StatsHandler) ExportBookings(c *gin.Context) {
	req := services.StatsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	fileBytes, filename, err := h.reportService.ExportBookings(req)
	if err != nil {
		utils.LogError(err, "ExportBookings: Error from reportService.ExportBookings")
		if errors.Is(err, services.ErrInvalidDateRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to export bookings.", "Internal error"))
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fileBytes)
}
