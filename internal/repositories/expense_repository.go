package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

// ExpenseRepository defines the interface for expense database operations.
type ExpenseRepository interface {
	Create(executor SQLExecutor, expense *models.Expense) (*models.Expense, error)
	List(filters models.ExpenseFilters) ([]models.Expense, int, error)
	ListByDateRange(startDate, endDate string) ([]models.Expense, error)
	Delete(executor SQLExecutor, id string) error
}

type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new instance of ExpenseRepository.
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func scanExpenseRow(row scanner, isList bool) (*models.Expense, int, error) {
	var expense models.Expense
	var description sql.NullString
	var totalCount int

	scanDest := []interface{}{
		&expense.ID, &expense.ExpenseDate, &expense.Category,
		&expense.Amount, &description, &expense.CreatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
	}

	if description.Valid {
		expense.Description = &description.String
	}
	return &expense, totalCount, nil
}

func (r *expenseRepository) Create(executor SQLExecutor, expense *models.Expense) (*models.Expense, error) {
	query := `INSERT INTO expenses (expense_date, category, amount, description)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		expense.ExpenseDate, expense.Category, expense.Amount, expense.Description,
	).Scan(&expense.ID, &expense.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating expense: %v", ErrDatabaseError, err)
	}
	return expense, nil
}

func (r *expenseRepository) List(filters models.ExpenseFilters) ([]models.Expense, int, error) {
	expenses := []models.Expense{}
	var totalCount int

	query := `SELECT id, to_char(expense_date, 'YYYY-MM-DD'), category, amount, description, created_at,
	                 COUNT(*) OVER() AS total_count
	          FROM expenses
	          ORDER BY expense_date DESC, created_at DESC`

	var args []interface{}
	if filters.PageSize > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, filters.PageSize, filters.Page*filters.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying expenses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		expense, scannedTotal, scanErr := scanExpenseRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		expenses = append(expenses, *expense)
		totalCount = scannedTotal
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, totalCount, nil
}

// ListByDateRange returns every expense dated within the inclusive range,
// without pagination. Used by reporting.
func (r *expenseRepository) ListByDateRange(startDate, endDate string) ([]models.Expense, error) {
	expenses := []models.Expense{}

	query := `SELECT id, to_char(expense_date, 'YYYY-MM-DD'), category, amount, description, created_at
	          FROM expenses
	          WHERE expense_date >= $1 AND expense_date <= $2
	          ORDER BY expense_date ASC, created_at ASC`

	rows, err := r.db.Query(query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expenses by date range: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		expense, _, scanErr := scanExpenseRow(rows, false)
		if scanErr != nil {
			return nil, scanErr
		}
		expenses = append(expenses, *expense)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, nil
}

func (r *expenseRepository) Delete(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting expense %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
