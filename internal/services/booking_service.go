package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// --- Custom Service Errors for Bookings ---
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingValidation = errors.New("booking data validation error")
)

// TimeSlots is the fixed list of bookable appointment slots.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// Delivery method labels for booking requests. DeliveryDropOff is the default.
const (
	DeliveryDropOff = "drop-off"
	DeliveryPickUp  = "pick-up"
)

const bookingDateLayout = "2006-01-02"

// --- Booking DTOs ---

// CreateBookingRequest is the public booking-form payload.
type CreateBookingRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Service        string `json:"service" binding:"required"`
	Date           string `json:"date" binding:"required"`
	TimeSlot       string `json:"time_slot" binding:"required"`
	DeliveryMethod string `json:"delivery_method"`
}

// UpdateBookingRequest is the admin edit payload. All fields are optional;
// PaymentAmount arrives in major units and is persisted as round(x*100)
// minor units.
type UpdateBookingRequest struct {
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"payment_status"`
	PaymentAmount *float64 `json:"payment_amount"`
	PaymentMethod *string  `json:"payment_method"`
}

// --- BookingService Interface ---
type BookingService interface {
	CreateBookingRequest(req CreateBookingRequest) (*models.BookingRequest, error)
	GetBookingByID(id string) (*models.BookingRequest, error)
	GetBookings(filters models.BookingFilters) ([]models.BookingRequest, int, error)
	UpdateBooking(id string, req UpdateBookingRequest) (*models.BookingRequest, error)
	DeleteBooking(id string) error
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	content     ContentService
	statuses    *models.StatusRegistry
	db          *sql.DB
	now         func() time.Time
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	br repositories.BookingRepository,
	cs ContentService,
	statuses *models.StatusRegistry,
	db *sql.DB,
) BookingService {
	return &bookingService{
		bookingRepo: br,
		content:     cs,
		statuses:    statuses,
		db:          db,
		now:         time.Now,
	}
}

func isValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ComposeBookingMessage builds the human-readable summary persisted with
// each booking request.
func ComposeBookingMessage(service string, date time.Time, timeSlot, deliveryMethod string) string {
	return fmt.Sprintf("Booking for %s on %s at %s. Delivery method: %s.",
		service, date.Format("January 2, 2006"), timeSlot, deliveryMethod)
}

func (s *bookingService) CreateBookingRequest(req CreateBookingRequest) (*models.BookingRequest, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Email) || utils.IsEmpty(req.Phone) {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrBookingValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrBookingValidation)
	}
	if !s.content.IsValidServiceSlug(req.Service) {
		return nil, fmt.Errorf("%w: unknown service '%s'", ErrBookingValidation, req.Service)
	}

	date, err := time.Parse(bookingDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date, use YYYY-MM-DD", ErrBookingValidation)
	}
	// The request date parses as UTC midnight, so today must come from the
	// UTC calendar as well.
	today := s.now().UTC()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(todayDate) {
		return nil, fmt.Errorf("%w: booking date cannot be in the past", ErrBookingValidation)
	}

	if !isValidTimeSlot(req.TimeSlot) {
		return nil, fmt.Errorf("%w: invalid time slot '%s'", ErrBookingValidation, req.TimeSlot)
	}

	deliveryMethod := req.DeliveryMethod
	if utils.IsEmpty(deliveryMethod) {
		deliveryMethod = DeliveryDropOff
	}
	if deliveryMethod != DeliveryDropOff && deliveryMethod != DeliveryPickUp {
		return nil, fmt.Errorf("%w: delivery method must be %s or %s", ErrBookingValidation, DeliveryDropOff, DeliveryPickUp)
	}

	booking := &models.BookingRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Service: []string{req.Service},
		Message: ComposeBookingMessage(req.Service, date, req.TimeSlot, deliveryMethod),
	}

	return s.bookingRepo.Create(s.db, booking)
}

func (s *bookingService) GetBookingByID(id string) (*models.BookingRequest, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBookings(filters models.BookingFilters) ([]models.BookingRequest, int, error) {
	if filters.PageSize <= 0 {
		filters.PageSize = 10
	}
	if filters.Page < 0 {
		filters.Page = 0
	}
	if filters.Status != nil && *filters.Status != "" && !s.statuses.BookingStatus.Contains(*filters.Status) {
		return nil, 0, fmt.Errorf("%w: invalid status '%s'", ErrBookingValidation, *filters.Status)
	}
	return s.bookingRepo.List(filters)
}

// UpdateBooking applies a partial edit to one booking. No transition rules
// are enforced between statuses; the last write wins.
func (s *bookingService) UpdateBooking(id string, req UpdateBookingRequest) (*models.BookingRequest, error) {
	booking, err := s.GetBookingByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !s.statuses.BookingStatus.Contains(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status '%s'", ErrBookingValidation, *req.Status)
		}
		booking.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		if !s.statuses.PaymentStatus.Contains(*req.PaymentStatus) {
			return nil, fmt.Errorf("%w: invalid payment status '%s'", ErrBookingValidation, *req.PaymentStatus)
		}
		booking.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentAmount != nil {
		if *req.PaymentAmount <= 0 {
			return nil, fmt.Errorf("%w: payment amount must be positive", ErrBookingValidation)
		}
		minor := utils.MajorToMinor(*req.PaymentAmount)
		booking.PaymentAmount = &minor
	}
	if req.PaymentMethod != nil {
		if utils.IsEmpty(*req.PaymentMethod) {
			booking.PaymentMethod = nil
		} else {
			booking.PaymentMethod = req.PaymentMethod
		}
	}

	updated, err := s.bookingRepo.Update(s.db, booking)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *bookingService) DeleteBooking(id string) error {
	err := s.bookingRepo.Delete(s.db, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBookingNotFound
	}
	return err
}
