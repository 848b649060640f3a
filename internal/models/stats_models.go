package models

// DailyStat is one day of aggregated business activity. Revenue and Expenses
// are minor currency units. Older aggregation consumers may not know about
// the Expenses field; it folds as zero when absent.
type DailyStat struct {
	Day             string `json:"day"`
	TotalOrders     int    `json:"total_orders"`
	CompletedOrders int    `json:"completed_orders"`
	Revenue         int64  `json:"revenue"`
	Expenses        int64  `json:"expenses"`
}

// StatsTotals folds a range of daily stats. Profit may be negative.
type StatsTotals struct {
	TotalOrders     int   `json:"total_orders"`
	CompletedOrders int   `json:"completed_orders"`
	TotalRevenue    int64 `json:"total_revenue"`
	TotalExpenses   int64 `json:"total_expenses"`
	Profit          int64 `json:"profit"`
}

// StatsSummary is the dashboard response: the per-day rows for charting plus
// the folded range totals.
type StatsSummary struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Days      []DailyStat `json:"days"`
	Totals    StatsTotals `json:"totals"`
}
