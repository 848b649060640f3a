package models

import "time"

// BookingRequest is a customer booking row. PaymentAmount is stored in minor
// currency units (paise); display conversion is the consumer's concern.
type BookingRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Service       []string  `json:"service"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentAmount *int64    `json:"payment_amount"`
	PaymentMethod *string   `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingFilters narrows and pages booking list queries. Page is 0-based.
type BookingFilters struct {
	Page     int
	PageSize int
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}
