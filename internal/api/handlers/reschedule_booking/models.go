package reschedule_booking

import (
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	rescheduleBooking "github.com/avdnk/DocBooking/internal/usecase/reschedule_booking"
	"github.com/avdnk/DocBooking/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Email        string `json:"email"`
	NewDate      string `json:"newDate"`      // "2026-09-16"
	NewStartTime string `json:"newStartTime"` // "17:00"
}

// RescheduledBookingResponse HTTP response model
type RescheduledBookingResponse struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	ServiceDuration int    `json:"serviceDurationMinutes"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(ref string) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		Ref:          ref,
		Email:        r.Email,
		NewDate:      newDate,
		NewStartTime: newStartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduledBookingResponse {
	return &RescheduledBookingResponse{
		ID:              resp.ID,
		Code:            resp.Code,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		ServiceDuration: resp.ServiceDuration,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
	}
}
