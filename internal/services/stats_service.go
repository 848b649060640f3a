package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
)

// ErrInvalidDateRange is returned for unparseable or inverted date ranges.
var ErrInvalidDateRange = errors.New("invalid date range")

const statsDateLayout = "2006-01-02"

// defaultStatsRangeDays is the trailing window used when no range is given,
// inclusive of today.
const defaultStatsRangeDays = 30

// StatsRequest selects an inclusive calendar-date range. Both fields empty
// means the default trailing window; an end date without a start date yields
// an all-zero summary without touching the database.
type StatsRequest struct {
	StartDate string
	EndDate   string
}

// --- StatsService Interface ---
type StatsService interface {
	GetDailyStats(req StatsRequest) (*models.StatsSummary, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
	now       func() time.Time
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(sr repositories.StatsRepository) StatsService {
	return &statsService{statsRepo: sr, now: time.Now}
}

// FoldDailyStats sums per-day aggregate rows into range totals. Days missing
// expense data contribute zero, so rows from the narrower aggregation shape
// fold correctly. Profit may be negative.
func FoldDailyStats(days []models.DailyStat) models.StatsTotals {
	var totals models.StatsTotals
	for _, d := range days {
		totals.TotalOrders += d.TotalOrders
		totals.CompletedOrders += d.CompletedOrders
		totals.TotalRevenue += d.Revenue
		totals.TotalExpenses += d.Expenses
	}
	totals.Profit = totals.TotalRevenue - totals.TotalExpenses
	return totals
}

func (s *statsService) GetDailyStats(req StatsRequest) (*models.StatsSummary, error) {
	// No start date selected: an all-zero result, no query issued.
	if req.StartDate == "" && req.EndDate != "" {
		return &models.StatsSummary{
			EndDate: req.EndDate,
			Days:    []models.DailyStat{},
		}, nil
	}

	var start, end time.Time
	if req.StartDate == "" {
		today := s.now().UTC()
		end = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		start = end.AddDate(0, 0, -(defaultStatsRangeDays - 1))
	} else {
		var err error
		start, err = time.Parse(statsDateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidDateRange)
		}
		if req.EndDate == "" {
			end = start
		} else {
			end, err = time.Parse(statsDateLayout, req.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidDateRange)
			}
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: end_date precedes start_date", ErrInvalidDateRange)
		}
	}

	days, err := s.statsRepo.GetDailyStats(start, end)
	if err != nil {
		return nil, err
	}

	return &models.StatsSummary{
		StartDate: start.Format(statsDateLayout),
		EndDate:   end.Format(statsDateLayout),
		Days:      days,
		Totals:    FoldDailyStats(days),
	}, nil
}
