// Package reports экспорт списка бронирований в PDF.
package reports

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/avdnk/DocBooking/internal/domain"
)

// ErrRender возвращается при ошибке генерации PDF
var ErrRender = errors.New("reports: failed to render PDF")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис генерации отчётов
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// RenderBookingsReport формирует PDF-отчёт по списку бронирований
func (s *Service) RenderBookingsReport(bookings []*domain.Booking, from, to time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Bookings report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Bookings %s - %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat)))
	pdf.Ln(12)

	headers := []string{"Date", "Time", "Code", "Service", "Customer", "Email", "Phone", "Status"}
	widths := []float64{24, 16, 40, 45, 45, 55, 30, 22}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, booking := range bookings {
		cells := []string{
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime.String(),
			booking.Code,
			booking.ServiceName,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			string(booking.Status),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(bookings) == 0 {
		pdf.Cell(0, 10, "No bookings in the selected period")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("RenderBookingsReport: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	s.logger.Info("RenderBookingsReport: rendered %d bookings, %d bytes", len(bookings), buf.Len())
	return buf.Bytes(), nil
}
