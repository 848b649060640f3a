package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-analyze/charts"
	"github.com/xuri/excelize/v2"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// --- Custom Service Errors for Reports ---
var (
	ErrNoExpenseData = errors.New("no expense data for the requested period")
	ErrReportRender  = errors.New("failed to render report")
)

// --- ReportService Interface ---
type ReportService interface {
	GenerateExpenseChart(req StatsRequest) ([]byte, error)
	ExportBookings(req StatsRequest) ([]byte, string, error)
}

type reportService struct {
	bookingRepo repositories.BookingRepository
	expenseRepo repositories.ExpenseRepository
	now         func() time.Time
}

// NewReportService creates a new instance of ReportService.
func NewReportService(br repositories.BookingRepository, er repositories.ExpenseRepository) ReportService {
	return &reportService{bookingRepo: br, expenseRepo: er, now: time.Now}
}

// resolveRange applies the same defaulting rules as the stats summary: an
// empty range means the trailing thirty days inclusive of today.
func (s *reportService) resolveRange(req StatsRequest) (time.Time, time.Time, error) {
	if req.StartDate == "" {
		today := s.now().UTC()
		end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		return end.AddDate(0, 0, -(defaultStatsRangeDays - 1)), end, nil
	}

	start, err := time.Parse(statsDateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidDateRange)
	}
	end := start
	if req.EndDate != "" {
		end, err = time.Parse(statsDateLayout, req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidDateRange)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date precedes start_date", ErrInvalidDateRange)
	}
	return start, end, nil
}

// AggregateExpensesByCategory sums expense amounts per category, in minor
// units.
func AggregateExpensesByCategory(expenses []models.Expense) map[string]int64 {
	totals := make(map[string]int64)
	for _, expense := range expenses {
		totals[expense.Category] += expense.Amount
	}
	return totals
}

// GenerateExpenseChart renders a PNG pie chart of expense totals per
// category over the requested date range.
func (s *reportService) GenerateExpenseChart(req StatsRequest) ([]byte, error) {
	start, end, err := s.resolveRange(req)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByDateRange(start.Format(statsDateLayout), end.Format(statsDateLayout))
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, ErrNoExpenseData
	}

	totals := AggregateExpensesByCategory(expenses)

	categoryNames := make([]string, 0, len(totals))
	for name := range totals {
		categoryNames = append(categoryNames, name)
	}
	sort.Strings(categoryNames)

	values := make([]float64, 0, len(categoryNames))
	for _, name := range categoryNames {
		values = append(values, utils.MinorToMajor(totals[name]))
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Expense Breakdown %s to %s", start.Format(statsDateLayout), end.Format(statsDateLayout)),
		}),
		charts.LegendLabelsOptionFunc(categoryNames),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportRender, err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportRender, err)
	}
	return buf, nil
}

var bookingExportHeaders = []string{
	"ID", "Name", "Email", "Phone", "Services", "Status",
	"Payment Status", "Payment Amount", "Payment Method", "Created At",
}

// ExportBookings builds an XLSX workbook of every booking created within
// the requested range, newest first.
func (s *reportService) ExportBookings(req StatsRequest) ([]byte, string, error) {
	start, end, err := s.resolveRange(req)
	if err != nil {
		return nil, "", err
	}
	// The upper bound covers the whole end day.
	rangeEnd := end.AddDate(0, 0, 1)

	bookings, _, err := s.bookingRepo.List(models.BookingFilters{
		DateFrom: &start,
		DateTo:   &rangeEnd,
	})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrReportRender, err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range bookingExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, booking := range bookings {
		amount := ""
		if booking.PaymentAmount != nil {
			amount = utils.FormatMinor(*booking.PaymentAmount)
		}
		method := ""
		if booking.PaymentMethod != nil {
			method = *booking.PaymentMethod
		}
		rowValues := []interface{}{
			booking.ID, booking.Name, booking.Email, booking.Phone,
			strings.Join(booking.Service, ", "), booking.Status,
			booking.PaymentStatus, amount, method,
			booking.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range rowValues {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrReportRender, err)
	}

	filename := fmt.Sprintf("bookings-%s-to-%s.xlsx", start.Format(statsDateLayout), end.Format(statsDateLayout))
	return buf.Bytes(), filename, nil
}
