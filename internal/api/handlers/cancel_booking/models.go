package cancel_booking

import (
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Email string `json:"email"`
}

// CancelledBookingResponse HTTP response model
type CancelledBookingResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelledAt,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *CancelledBookingResponse {
	resp := &CancelledBookingResponse{
		ID:     booking.ID,
		Code:   booking.Code,
		Status: string(booking.Status),
	}
	if booking.CancelledAt != nil {
		resp.CancelledAt = booking.CancelledAt.Format(time.RFC3339)
	}
	return resp
}
