package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// --- Custom Service Errors for Invoices ---
var (
	ErrInvoiceNotPaid = errors.New("invoice is only available for paid bookings")
	ErrInvoiceRender  = errors.New("failed to render invoice")
)

// Business letterhead details.
const (
	businessName    = "Zapato Lauderia.co"
	businessAddr1   = "2nd Floor, Opposit KSEB office"
	businessAddr2   = "Siraj Bypass road, Koduvally"
	businessEmail   = "zapatolauderiaco@gmail.com"
	invoiceCurrency = "Rs."
)

// --- InvoiceService Interface ---
type InvoiceService interface {
	RenderInvoice(booking *models.BookingRequest) ([]byte, string, error)
}

type invoiceService struct {
	now func() time.Time
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService() InvoiceService {
	return &invoiceService{now: time.Now}
}

// InvoiceFilename derives the download name from the booking's shortened
// identifier: invoice-<first 8 chars of id>.pdf.
func InvoiceFilename(bookingID string) string {
	short := bookingID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("invoice-%s.pdf", short)
}

// InvoiceNumber is the shortened identifier printed on the document.
func InvoiceNumber(bookingID string) string {
	return strings.ToUpper(shortID(bookingID))
}

// RenderInvoice produces a single-page A4 PDF for a paid booking. Rendering
// never mutates the booking row; failures are terminal for the request.
func (s *invoiceService) RenderInvoice(booking *models.BookingRequest) ([]byte, string, error) {
	if booking.PaymentStatus != "paid" {
		return nil, "", ErrInvoiceNotPaid
	}

	amount := "N/A"
	if booking.PaymentAmount != nil {
		amount = fmt.Sprintf("%s %s", invoiceCurrency, utils.FormatMinor(*booking.PaymentAmount))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(120, 8, businessName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(60, 8, "Invoice", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, businessAddr1, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, businessAddr2, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, businessEmail, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	// Bill-to block and invoice metadata
	topY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 5, booking.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, booking.Email, "", 1, "L", false, 0, "")
	if booking.Phone != "" {
		pdf.CellFormat(90, 5, booking.Phone, "", 1, "L", false, 0, "")
	}

	pdf.SetXY(105, topY)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 5, fmt.Sprintf("Invoice #: %s", InvoiceNumber(booking.ID)), "", 2, "R", false, 0, "")
	pdf.CellFormat(90, 5, fmt.Sprintf("Date: %s", s.now().Format("02/01/2006")), "", 2, "R", false, 0, "")
	pdf.CellFormat(90, 5, fmt.Sprintf("Booking Date: %s", booking.CreatedAt.Format("02/01/2006")), "", 2, "R", false, 0, "")
	pdf.SetY(topY + 28)

	// Line items: services booked, with the total charged on the final line.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(140, 8, "Service Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, label := range booking.Service {
		lineAmount := "-"
		if i == len(booking.Service)-1 && booking.PaymentAmount != nil {
			lineAmount = amount
		}
		pdf.CellFormat(140, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, lineAmount, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Totals
	pdf.SetX(110)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(45, 6, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, amount, "", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(45, 8, "Total:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, amount, "T", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(45, 6, "Payment Status:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, booking.PaymentStatus, "", 1, "R", false, 0, "")

	// Footer
	pdf.SetY(-40)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 4, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "If you have any questions, please contact us.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvoiceRender, err)
	}
	return buf.Bytes(), InvoiceFilename(booking.ID), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
