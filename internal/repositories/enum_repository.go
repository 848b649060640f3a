package repositories

import (
	"database/sql"
	"fmt"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

// EnumRepository introspects database enum types so the application never
// hardcodes a member list that the schema owns.
type EnumRepository interface {
	LoadStatusRegistry() (*models.StatusRegistry, error)
}

type enumRepository struct {
	db *sql.DB
}

// NewEnumRepository creates a new instance of EnumRepository.
func NewEnumRepository(db *sql.DB) EnumRepository {
	return &enumRepository{db: db}
}

func (r *enumRepository) members(typeName string) ([]string, error) {
	query := `SELECT e.enumlabel
	          FROM pg_enum e
	          JOIN pg_type t ON t.oid = e.enumtypid
	          WHERE t.typname = $1
	          ORDER BY e.enumsortorder`

	rows, err := r.db.Query(query, typeName)
	if err != nil {
		return nil, fmt.Errorf("%w: querying enum %s: %v", ErrDatabaseError, typeName, err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("%w: scanning enum %s: %v", ErrDatabaseError, typeName, err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating enum %s: %v", ErrDatabaseError, typeName, err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: enum type %s has no members", ErrDatabaseError, typeName)
	}
	return members, nil
}

// LoadStatusRegistry mirrors the booking_status, payment_status and
// expense_category enum types into in-memory sets.
func (r *enumRepository) LoadStatusRegistry() (*models.StatusRegistry, error) {
	bookingStatus, err := r.members("booking_status")
	if err != nil {
		return nil, err
	}
	paymentStatus, err := r.members("payment_status")
	if err != nil {
		return nil, err
	}
	expenseCategory, err := r.members("expense_category")
	if err != nil {
		return nil, err
	}

	return &models.StatusRegistry{
		BookingStatus:   models.NewEnumSet(bookingStatus),
		PaymentStatus:   models.NewEnumSet(paymentStatus),
		ExpenseCategory: models.NewEnumSet(expenseCategory),
	}, nil
}
