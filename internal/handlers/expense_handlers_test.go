package handlers

import (
	"bytes"
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

type stubExpenseService struct {
	created     *models.Expense
	createReq   *services.CreateExpenseRequest
	createErr   error
	listFilters []models.ExpenseFilters
	listResult  []models.Expense
	listTotal   int
	deleteErr   error
}

func (s *stubExpenseService) CreateExpense(req services.CreateExpenseRequest) (*models.Expense, error) {
	s.createReq = &req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubExpenseService) GetExpenses(filters models.ExpenseFilters) ([]models.Expense, int, error) {
	s.listFilters = append(s.listFilters, filters)
	return s.listResult, s.listTotal, nil
}

func (s *stubExpenseService) DeleteExpense(id string) error {
	return s.deleteErr
}

type stubReportService struct {
	chart     []byte
	chartErr  error
	export    []byte
	filename  string
	exportErr error
}

func (s *stubReportService) GenerateExpenseChart(req services.StatsRequest) ([]byte, error) {
	return s.chart, s.chartErr
}

func (s *stubReportService) ExportBookings(req services.StatsRequest) ([]byte, string, error) {
	return s.export, s.filename, s.exportErr
}

func newExpenseRouter(es *stubExpenseService, rs *stubReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewExpenseHandler(es, rs)

	engine := gin.New()
	engine.POST("/expenses", handler.CreateExpense)
	engine.GET("/expenses", handler.GetExpenses)
	engine.GET("/expenses/chart", handler.GetExpenseChart)
	engine.DELETE("/expenses/:id", handler.DeleteExpense)
	return engine
}

func TestCreateExpenseHandler(t *testing.T) {
	es := &stubExpenseService{created: &models.Expense{ID: "e1", Category: "rent", Amount: 10000}}
	engine := newExpenseRouter(es, &stubReportService{})

	body, _ := json.Marshal(gin.H{"category": "rent", "amount": 100.00, "expense_date": "2026-03-01"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, es.createReq)
	assert.Equal(t, 100.00, es.createReq.Amount)
}

func TestCreateExpenseHandlerUnknownCategory(t *testing.T) {
	es := &stubExpenseService{createErr: services.ErrExpenseValidation}
	engine := newExpenseRouter(es, &stubReportService{})

	body, _ := json.Marshal(gin.H{"category": "snacks", "amount": 10.0})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetExpensesHandlerDefaults(t *testing.T) {
	es := &stubExpenseService{listTotal: 7}
	engine := newExpenseRouter(es, &stubReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, es.listFilters, 1)
	assert.Equal(t, 0, es.listFilters[0].Page)
	assert.Equal(t, 10, es.listFilters[0].PageSize)
	assert.Contains(t, w.Body.String(), `"total":7`)
}

func TestGetExpenseChartHandler(t *testing.T) {
	rs := &stubReportService{chart: []byte{0x89, 'P', 'N', 'G'}}
	engine := newExpenseRouter(&stubExpenseService{}, rs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/expenses/chart?start_date=2026-03-01&end_date=2026-03-31", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestGetExpenseChartHandlerNoData(t *testing.T) {
	rs := &stubReportService{chartErr: services.ErrNoExpenseData}
	engine := newExpenseRouter(&stubExpenseService{}, rs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/expenses/chart", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteExpenseHandlerNotFound(t *testing.T) {
	es := &stubExpenseService{deleteErr: services.ErrExpenseNotFound}
	engine := newExpenseRouter(es, &stubReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/expenses/missing", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
