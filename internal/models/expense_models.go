package models

import "time"

// Expense is a business expense row. Amount is stored in minor currency
// units (paise) and is always positive. ExpenseDate carries no time
// component; it is serialized as YYYY-MM-DD.
type Expense struct {
	ID          string    `json:"id"`
	ExpenseDate string    `json:"expense_date"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseFilters pages expense list queries. Page is 0-based.
type ExpenseFilters struct {
	Page     int
	PageSize int
}
