package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/services"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// BookingHandler holds the booking and invoice services.
type BookingHandler struct {
	bookingService services.BookingService
	invoiceService services.InvoiceService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService, is services.InvoiceService) *BookingHandler {
	return &BookingHandler{bookingService: bs, invoiceService: is}
}

// CreateBookingRequest handles the public booking form submission.
func (h *BookingHandler) CreateBookingRequest(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateBookingRequest: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.CreateBookingRequest(req)
	if err != nil {
		utils.LogError(err, "CreateBookingRequest: Error from bookingService.CreateBookingRequest")
		if errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit booking request.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookings handles the admin booking list with pagination and filters.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	filters := models.BookingFilters{Page: page, PageSize: pageSize}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}
	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date_from, use YYYY-MM-DD.", err.Error()))
			return
		}
		filters.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date_to, use YYYY-MM-DD.", err.Error()))
			return
		}
		end := t.AddDate(0, 0, 1)
		filters.DateTo = &end
	}

	bookings, totalCount, err := h.bookingService.GetBookings(filters)
	if err != nil {
		utils.LogError(err, "GetBookings: Error from bookingService.GetBookings")
		if errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bookings.", "Internal error"))
		}
		return
	}

	if bookings == nil {
		bookings = []models.BookingRequest{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      bookings,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetBookingByID handles fetching a single booking.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.bookingService.GetBookingByID(id)
	if err != nil {
		utils.LogError(err, "GetBookingByID: Error from bookingService.GetBookingByID for ID "+id)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles the admin partial edit of a booking.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateBooking: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.UpdateBooking(id, req)
	if err != nil {
		utils.LogError(err, "UpdateBooking: Error from bookingService.UpdateBooking for ID "+id)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles deleting a booking.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.bookingService.DeleteBooking(id); err != nil {
		utils.LogError(err, "DeleteBooking: Error from bookingService.DeleteBooking for ID "+id)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// DownloadInvoice streams the PDF invoice for a paid booking.
func (h *BookingHandler) DownloadInvoice(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.bookingService.GetBookingByID(id)
	if err != nil {
		utils.LogError(err, "DownloadInvoice: Error from bookingService.GetBookingByID for ID "+id)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking.", "Internal error"))
		}
		return
	}

	pdfBytes, filename, err := h.invoiceService.RenderInvoice(booking)
	if err != nil {
		utils.LogError(err, "DownloadInvoice: Error from invoiceService.RenderInvoice for ID "+id)
		if errors.Is(err, services.ErrInvoiceNotPaid) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Invoice is only available once the booking is paid.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate invoice.", "Internal error"))
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
