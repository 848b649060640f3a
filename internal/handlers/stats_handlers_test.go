package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/services"
)

type stubStatsService struct {
	req     *services.StatsRequest
	summary *models.StatsSummary
	err     error
}

func (s *stubStatsService) GetDailyStats(req services.StatsRequest) (*models.StatsSummary, error) {
	s.req = &req
	return s.summary, s.err
}

func newStatsRouter(ss *stubStatsService, rs *stubReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewStatsHandler(ss, rs)

	engine := gin.New()
	engine.GET("/stats/daily", handler.GetDailyStats)
	engine.GET("/stats/export", handler.ExportBookings)
	return engine
}

func TestGetDailyStatsHandler(t *testing.T) {
	ss := &stubStatsService{summary: &models.StatsSummary{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Days:      []models.DailyStat{{Day: "2026-03-01", TotalOrders: 2, Revenue: 5000}},
		Totals:    models.StatsTotals{TotalOrders: 2, TotalRevenue: 5000, Profit: 5000},
	}}
	engine := newStatsRouter(ss, &stubReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/daily?start_date=2026-03-01&end_date=2026-03-31", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, ss.req)
	assert.Equal(t, "2026-03-01", ss.req.StartDate)

	var resp models.StatsSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5000), resp.Totals.Profit)
	assert.Len(t, resp.Days, 1)
}

func TestGetDailyStatsHandlerBadRange(t *testing.T) {
	ss := &stubStatsService{err: services.ErrInvalidDateRange}
	engine := newStatsRouter(ss, &stubReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/daily?start_date=bogus", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportBookingsHandler(t *testing.T) {
	rs := &stubReportService{export: []byte("PK\x03\x04"), filename: "bookings-2026-03-01-to-2026-03-31.xlsx"}
	engine := newStatsRouter(&stubStatsService{}, rs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/export?start_date=2026-03-01&end_date=2026-03-31", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings-2026-03-01-to-2026-03-31.xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
}
