package create_block

import (
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/service/blocks"
	"github.com/avdnk/DocBooking/pkg/types"
)

// CreateBlockRequest HTTP request model.
// startTime и endTime указываются либо оба, либо ни одного.
type CreateBlockRequest struct {
	Date      string  `json:"date"`                // "2026-09-20"
	StartTime *string `json:"startTime,omitempty"` // "13:00"
	EndTime   *string `json:"endTime,omitempty"`   // "15:00"
	Reason    *string `json:"reason,omitempty"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockRequest) ToServiceRequest() (*blocks.CreateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &blocks.CreateRequest{
		Date:   date,
		Reason: r.Reason,
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}
	if r.EndTime != nil {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	return req, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(block *domain.BlockedRange) *BlockResponse {
	resp := &BlockResponse{
		ID:        block.ID,
		Date:      block.Date.Format(domain.DateFormat),
		Reason:    block.Reason,
		CreatedAt: block.CreatedAt.Format(time.RFC3339),
	}
	if block.StartTime != nil {
		s := block.StartTime.String()
		resp.StartTime = &s
	}
	if block.EndTime != nil {
		e := block.EndTime.String()
		resp.EndTime = &e
	}
	return resp
}
