package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

type stubStatsRepo struct {
	calls  int
	start  time.Time
	end    time.Time
	result []models.DailyStat
	err    error
}

func (r *stubStatsRepo) GetDailyStats(startDate, endDate time.Time) ([]models.DailyStat, error) {
	r.calls++
	r.start = startDate
	r.end = endDate
	return r.result, r.err
}

func newTestStatsService(repo *stubStatsRepo) *statsService {
	return &statsService{
		statsRepo: repo,
		now:       func() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC) },
	}
}

func TestFoldDailyStats(t *testing.T) {
	days := []models.DailyStat{
		{Day: "2026-03-01", TotalOrders: 3, CompletedOrders: 2, Revenue: 15000, Expenses: 4000},
		{Day: "2026-03-02", TotalOrders: 1, CompletedOrders: 0, Revenue: 0, Expenses: 2500},
		{Day: "2026-03-03"},
	}

	totals := FoldDailyStats(days)
	assert.Equal(t, 4, totals.TotalOrders)
	assert.Equal(t, 2, totals.CompletedOrders)
	assert.Equal(t, int64(15000), totals.TotalRevenue)
	assert.Equal(t, int64(6500), totals.TotalExpenses)
	assert.Equal(t, int64(8500), totals.Profit)
}

func TestFoldDailyStatsProfitMayBeNegative(t *testing.T) {
	totals := FoldDailyStats([]models.DailyStat{
		{Day: "2026-03-01", Revenue: 1000, Expenses: 9000},
	})
	assert.Equal(t, int64(-8000), totals.Profit)
}

func TestFoldDailyStatsEmpty(t *testing.T) {
	totals := FoldDailyStats(nil)
	assert.Equal(t, models.StatsTotals{}, totals)
}

func TestGetDailyStatsEndWithoutStartSkipsQuery(t *testing.T) {
	repo := &stubStatsRepo{}
	svc := newTestStatsService(repo)

	summary, err := svc.GetDailyStats(StatsRequest{EndDate: "2026-03-31"})
	require.NoError(t, err)
	assert.Zero(t, repo.calls, "no query should be issued")
	assert.Empty(t, summary.Days)
	assert.Equal(t, models.StatsTotals{}, summary.Totals)
}

func TestGetDailyStatsDefaultsToTrailingThirtyDays(t *testing.T) {
	repo := &stubStatsRepo{}
	svc := newTestStatsService(repo)

	summary, err := svc.GetDailyStats(StatsRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	assert.Equal(t, "2026-02-09", summary.StartDate)
	assert.Equal(t, "2026-03-10", summary.EndDate)
	assert.Equal(t, repo.end.Sub(repo.start), 29*24*time.Hour)
}

func TestGetDailyStatsStartOnlyCollapsesToSingleDay(t *testing.T) {
	repo := &stubStatsRepo{result: []models.DailyStat{{Day: "2026-03-05", TotalOrders: 2, Revenue: 7000}}}
	svc := newTestStatsService(repo)

	summary, err := svc.GetDailyStats(StatsRequest{StartDate: "2026-03-05"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", summary.StartDate)
	assert.Equal(t, "2026-03-05", summary.EndDate)
	assert.Equal(t, int64(7000), summary.Totals.TotalRevenue)
}

func TestGetDailyStatsRejectsInvertedRange(t *testing.T) {
	repo := &stubStatsRepo{}
	svc := newTestStatsService(repo)

	_, err := svc.GetDailyStats(StatsRequest{StartDate: "2026-03-10", EndDate: "2026-03-01"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Zero(t, repo.calls)
}

func TestGetDailyStatsRejectsBadDates(t *testing.T) {
	svc := newTestStatsService(&stubStatsRepo{})

	_, err := svc.GetDailyStats(StatsRequest{StartDate: "03-10-2026"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.GetDailyStats(StatsRequest{StartDate: "2026-03-01", EndDate: "nope"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
