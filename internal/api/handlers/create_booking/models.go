package create_booking

import (
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	createBooking "github.com/avdnk/DocBooking/internal/usecase/create_booking"
	"github.com/avdnk/DocBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64   `json:"serviceId"`
	Date          string  `json:"date"`      // "2026-09-15"
	StartTime     string  `json:"startTime"` // "16:30"
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Comments      *string `json:"comments,omitempty"`
}

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
	AccessToken     string  `json:"accessToken"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Date:          date,
		StartTime:     startTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Comments:      r.Comments,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Code:            resp.Code,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		ServiceDuration: resp.ServiceDuration,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		Comments:        resp.Comments,
		Status:          resp.Status,
		AccessToken:     resp.AccessToken,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
