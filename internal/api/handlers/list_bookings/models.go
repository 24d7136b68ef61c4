package list_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

// BookingResponse HTTP модель бронирования в списке врача
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

// BookingsResponse HTTP response model со списком бронирований
type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ParseFilter собирает фильтр бронирований из query параметров:
// from, to (YYYY-MM-DD), status (confirmed|cancelled), includeCancelled (bool)
func ParseFilter(query url.Values) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from: %v", err)
		}
		filter.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to: %v", err)
		}
		filter.EndDate = &to
	}

	switch raw := query.Get("status"); raw {
	case "":
	case string(domain.StatusConfirmed):
		status := domain.StatusConfirmed
		filter.Status = &status
		filter.IncludeInactive = false
	case string(domain.StatusCancelled):
		status := domain.StatusCancelled
		filter.Status = &status
		filter.IncludeInactive = true
	default:
		return filter, fmt.Errorf("invalid status: %q", raw)
	}

	if query.Get("includeCancelled") == "true" {
		filter.IncludeInactive = true
	}

	return filter, nil
}

// FromDomain конвертирует доменную модель в HTTP модель
func FromDomain(booking *domain.Booking) BookingResponse {
	return BookingResponse{
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
