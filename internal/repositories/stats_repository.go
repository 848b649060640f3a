package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

// StatsRepository runs the date-range daily aggregation over bookings and
// expenses. One query per range; the per-day rows come back ordered.
type StatsRepository interface {
	GetDailyStats(startDate, endDate time.Time) ([]models.DailyStat, error)
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// getDailyStatsQuery emits one row per calendar day in the inclusive range,
// zero-filled for days with no activity. Revenue counts only completed,
// priced orders; both monetary columns stay in minor units.
const getDailyStatsQuery = `
	SELECT
		to_char(d.day, 'YYYY-MM-DD') AS day,
		COALESCE(o.total_orders, 0),
		COALESCE(o.completed_orders, 0),
		COALESCE(o.revenue, 0),
		COALESCE(e.expenses, 0)
	FROM generate_series($1::date, $2::date, interval '1 day') AS d(day)
	LEFT JOIN (
		SELECT created_at::date AS day,
		       COUNT(*) AS total_orders,
		       COUNT(*) FILTER (WHERE status = 'completed') AS completed_orders,
		       COALESCE(SUM(payment_amount) FILTER (WHERE status = 'completed'), 0) AS revenue
		FROM booking_requests
		WHERE created_at::date BETWEEN $1::date AND $2::date
		GROUP BY created_at::date
	) o ON o.day = d.day
	LEFT JOIN (
		SELECT expense_date AS day, SUM(amount) AS expenses
		FROM expenses
		WHERE expense_date BETWEEN $1::date AND $2::date
		GROUP BY expense_date
	) e ON e.day = d.day
	ORDER BY d.day ASC
`

func (r *statsRepository) GetDailyStats(startDate, endDate time.Time) ([]models.DailyStat, error) {
	start := startDate.Format("2006-01-02")
	end := endDate.Format("2006-01-02")

	rows, err := r.db.Query(getDailyStatsQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: querying daily stats: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	stats := []models.DailyStat{}
	for rows.Next() {
		var stat models.DailyStat
		if err := rows.Scan(&stat.Day, &stat.TotalOrders, &stat.CompletedOrders,
			&stat.Revenue, &stat.Expenses); err != nil {
			return nil, fmt.Errorf("%w: scanning daily stat: %v", ErrDatabaseError, err)
		}
		stats = append(stats, stat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating daily stat rows: %v", ErrDatabaseError, err)
	}
	return stats, nil
}
