package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
)

type stubExpenseRepo struct {
	createCalls int
	created     *models.Expense
	listCalls   []models.ExpenseFilters
	listResult  []models.Expense
	listTotal   int
	rangeResult []models.Expense
	deleted     []string
	err         error
}

func (r *stubExpenseRepo) Create(_ repositories.SQLExecutor, expense *models.Expense) (*models.Expense, error) {
	r.createCalls++
	if r.err != nil {
		return nil, r.err
	}
	expense.ID = "e1000000-0000-0000-0000-000000000000"
	expense.CreatedAt = time.Now()
	r.created = expense
	return expense, nil
}

func (r *stubExpenseRepo) List(filters models.ExpenseFilters) ([]models.Expense, int, error) {
	r.listCalls = append(r.listCalls, filters)
	return r.listResult, r.listTotal, r.err
}

func (r *stubExpenseRepo) ListByDateRange(startDate, endDate string) ([]models.Expense, error) {
	return r.rangeResult, r.err
}

func (r *stubExpenseRepo) Delete(_ repositories.SQLExecutor, id string) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func newTestExpenseService(repo *stubExpenseRepo) *expenseService {
	return &expenseService{
		expenseRepo: repo,
		statuses:    testStatusRegistry(),
		now:         func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateExpenseConvertsToMinorUnits(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := newTestExpenseService(repo)

	expense, err := svc.CreateExpense(CreateExpenseRequest{
		ExpenseDate: "2026-03-01",
		Category:    "rent",
		Amount:      100.00,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), expense.Amount)
	assert.Equal(t, "rent", expense.Category)
	assert.Equal(t, "2026-03-01", expense.ExpenseDate)
	assert.Nil(t, expense.Description)
}

func TestCreateExpenseDefaultsDateToToday(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := newTestExpenseService(repo)

	expense, err := svc.CreateExpense(CreateExpenseRequest{Category: "credit", Amount: 12.50})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", expense.ExpenseDate)
	assert.Equal(t, int64(1250), expense.Amount)
}

func TestCreateExpenseBlankDescriptionStoredAsNull(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := newTestExpenseService(repo)

	blank := "   "
	expense, err := svc.CreateExpense(CreateExpenseRequest{Category: "rent", Amount: 5, Description: &blank})
	require.NoError(t, err)
	assert.Nil(t, expense.Description)

	note := "march rent"
	expense, err = svc.CreateExpense(CreateExpenseRequest{Category: "rent", Amount: 5, Description: &note})
	require.NoError(t, err)
	require.NotNil(t, expense.Description)
	assert.Equal(t, "march rent", *expense.Description)
}

func TestCreateExpenseValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateExpenseRequest
	}{
		{"unknown category", CreateExpenseRequest{Category: "snacks", Amount: 10}},
		{"zero amount", CreateExpenseRequest{Category: "rent", Amount: 0}},
		{"negative amount", CreateExpenseRequest{Category: "rent", Amount: -5}},
		{"bad date", CreateExpenseRequest{Category: "rent", Amount: 10, ExpenseDate: "01/03/2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubExpenseRepo{}
			svc := newTestExpenseService(repo)

			_, err := svc.CreateExpense(tt.req)
			assert.ErrorIs(t, err, ErrExpenseValidation)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestGetExpensesDefaultsPagination(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := newTestExpenseService(repo)

	_, _, err := svc.GetExpenses(models.ExpenseFilters{Page: -1})
	require.NoError(t, err)
	require.Len(t, repo.listCalls, 1)
	assert.Equal(t, 0, repo.listCalls[0].Page)
	assert.Equal(t, 10, repo.listCalls[0].PageSize)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	repo := &stubExpenseRepo{err: repositories.ErrNotFound}
	svc := newTestExpenseService(repo)

	assert.ErrorIs(t, svc.DeleteExpense("missing"), ErrExpenseNotFound)
}
