package get_booking

import (
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServiceDuration int     `json:"serviceDurationMinutes"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	Comments        *string `json:"comments,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		Code:            booking.Code,
		ServiceID:       booking.ServiceID,
		ServiceName:     booking.ServiceName,
		ServiceDuration: booking.ServiceDuration,
		Date:            booking.BookingDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		Comments:        booking.Comments,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
	}
}
