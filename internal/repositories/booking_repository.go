package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

// BookingRepository defines the interface for booking-request database operations.
type BookingRepository interface {
	Create(executor SQLExecutor, booking *models.BookingRequest) (*models.BookingRequest, error)
	GetByID(id string) (*models.BookingRequest, error)
	List(filters models.BookingFilters) ([]models.BookingRequest, int, error)
	Update(executor SQLExecutor, booking *models.BookingRequest) (*models.BookingRequest, error)
	Delete(executor SQLExecutor, id string) error
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const selectBookingFields = `
	id, name, email, phone, service, message, status, payment_status,
	payment_amount, payment_method, created_at
`

// scanBookingRow scans a booking row; list queries carry a trailing
// COUNT(*) OVER() column.
func scanBookingRow(row scanner, isList bool) (*models.BookingRequest, int, error) {
	var booking models.BookingRequest
	var paymentAmount sql.NullInt64
	var paymentMethod sql.NullString
	var totalCount int

	scanDest := []interface{}{
		&booking.ID, &booking.Name, &booking.Email, &booking.Phone,
		pq.Array(&booking.Service), &booking.Message, &booking.Status,
		&booking.PaymentStatus, &paymentAmount, &paymentMethod, &booking.CreatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning booking request: %v", ErrDatabaseError, err)
	}

	if paymentAmount.Valid {
		booking.PaymentAmount = &paymentAmount.Int64
	}
	if paymentMethod.Valid {
		booking.PaymentMethod = &paymentMethod.String
	}
	return &booking, totalCount, nil
}

func (r *bookingRepository) Create(executor SQLExecutor, booking *models.BookingRequest) (*models.BookingRequest, error) {
	// status and payment_status fall to the schema defaults; the enum types
	// own their member sets, so no literal is written here.
	query := `INSERT INTO booking_requests (name, email, phone, service, message)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, status, payment_status, created_at`

	err := executor.QueryRow(query,
		booking.Name, booking.Email, booking.Phone, pq.Array(booking.Service),
		booking.Message,
	).Scan(&booking.ID, &booking.Status, &booking.PaymentStatus, &booking.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating booking request: %v", ErrDatabaseError, err)
	}
	return booking, nil
}

func (r *bookingRepository) GetByID(id string) (*models.BookingRequest, error) {
	query := "SELECT " + selectBookingFields + " FROM booking_requests WHERE id = $1"
	booking, _, err := scanBookingRow(r.db.QueryRow(query, id), false)
	return booking, err
}

// buildBookingListQuery assembles the filtered list query. Page is 0-based:
// page p at size s selects rows [s*p, s*p+s-1] of the created_at DESC order.
// DateTo is an exclusive upper bound so callers can cover a whole calendar
// day by passing the following midnight.
func buildBookingListQuery(filters models.BookingFilters) (string, []interface{}) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + selectBookingFields + ", COUNT(*) OVER() AS total_count FROM booking_requests")

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argCount))
		args = append(args, *filters.DateFrom)
		argCount++
	}
	if filters.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argCount))
		args = append(args, *filters.DateTo)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.PageSize)
		argCount++
		if filters.Page > 0 {
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, filters.Page*filters.PageSize)
		}
	}

	return queryBuilder.String(), args
}

func (r *bookingRepository) List(filters models.BookingFilters) ([]models.BookingRequest, int, error) {
	bookings := []models.BookingRequest{}
	var totalCount int

	query, args := buildBookingListQuery(filters)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying booking requests: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		booking, scannedTotal, scanErr := scanBookingRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		bookings = append(bookings, *booking)
		totalCount = scannedTotal
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, totalCount, nil
}

func (r *bookingRepository) Update(executor SQLExecutor, booking *models.BookingRequest) (*models.BookingRequest, error) {
	query := `UPDATE booking_requests SET
	            status = $1, payment_status = $2, payment_amount = $3, payment_method = $4
	          WHERE id = $5
	          RETURNING created_at`

	err := executor.QueryRow(query,
		booking.Status, booking.PaymentStatus, booking.PaymentAmount,
		booking.PaymentMethod, booking.ID,
	).Scan(&booking.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating booking request %s: %v", ErrDatabaseError, booking.ID, err)
	}
	return booking, nil
}

func (r *bookingRepository) Delete(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM booking_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting booking request %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
