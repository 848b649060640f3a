package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// --- Custom Service Errors for Expenses ---
var (
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrExpenseValidation = errors.New("expense data validation error")
)

const expenseDateLayout = "2006-01-02"

// CreateExpenseRequest is the expense-form payload. Amount arrives in major
// units and is persisted as round(x*100) minor units.
type CreateExpenseRequest struct {
	ExpenseDate string  `json:"expense_date"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description *string `json:"description"`
}

// --- ExpenseService Interface ---
type ExpenseService interface {
	CreateExpense(req CreateExpenseRequest) (*models.Expense, error)
	GetExpenses(filters models.ExpenseFilters) ([]models.Expense, int, error)
	DeleteExpense(id string) error
}

type expenseService struct {
	expenseRepo repositories.ExpenseRepository
	statuses    *models.StatusRegistry
	db          *sql.DB
	now         func() time.Time
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(er repositories.ExpenseRepository, statuses *models.StatusRegistry, db *sql.DB) ExpenseService {
	return &expenseService{
		expenseRepo: er,
		statuses:    statuses,
		db:          db,
		now:         time.Now,
	}
}

func (s *expenseService) CreateExpense(req CreateExpenseRequest) (*models.Expense, error) {
	if !s.statuses.ExpenseCategory.Contains(req.Category) {
		return nil, fmt.Errorf("%w: invalid category '%s'", ErrExpenseValidation, req.Category)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrExpenseValidation)
	}

	expenseDate := req.ExpenseDate
	if utils.IsEmpty(expenseDate) {
		expenseDate = s.now().UTC().Format(expenseDateLayout)
	} else if _, err := time.Parse(expenseDateLayout, expenseDate); err != nil {
		return nil, fmt.Errorf("%w: invalid expense date, use YYYY-MM-DD", ErrExpenseValidation)
	}

	var description *string
	if req.Description != nil && !utils.IsEmpty(*req.Description) {
		description = req.Description
	}

	expense := &models.Expense{
		ExpenseDate: expenseDate,
		Category:    req.Category,
		Amount:      utils.MajorToMinor(req.Amount),
		Description: description,
	}

	return s.expenseRepo.Create(s.db, expense)
}

func (s *expenseService) GetExpenses(filters models.ExpenseFilters) ([]models.Expense, int, error) {
	if filters.PageSize <= 0 {
		filters.PageSize = 10
	}
	if filters.Page < 0 {
		filters.Page = 0
	}
	return s.expenseRepo.List(filters)
}

func (s *expenseService) DeleteExpense(id string) error {
	err := s.expenseRepo.Delete(s.db, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrExpenseNotFound
	}
	return err
}
