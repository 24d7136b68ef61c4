package get_available_slots

import (
	"github.com/avdnk/DocBooking/internal/domain"
	getSlots "github.com/avdnk/DocBooking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model со слотами на день
type SlotsResponse struct {
	Date      string         `json:"date"`
	ServiceID int64          `json:"serviceId"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &SlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
