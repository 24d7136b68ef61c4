package list_blocks

import (
	"net/http"
	"time"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/domain"
)

const msgInvalidFrom = "некорректный формат параметра from, ожидается YYYY-MM-DD"

type Handler struct {
	service BlocksService
	logger  Logger
}

func NewHandler(service BlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BlockResponse HTTP модель заблокированного диапазона
type BlockResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// BlocksResponse HTTP response model со списком блокировок
type BlocksResponse struct {
	BlockedRanges []BlockResponse `json:"blockedRanges"`
}

// Handle GET /api/v1/admin/blocked-ranges?from=YYYY-MM-DD
// Без параметра from возвращаются блокировки начиная с сегодняшнего дня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/blocked-ranges - Invalid from parameter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		from = parsed
	}

	list, err := h.service.List(r.Context(), from)
	if err != nil {
		h.logger.Error("GET /admin/blocked-ranges - Failed to list blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := BlocksResponse{BlockedRanges: make([]BlockResponse, len(list))}
	for i, block := range list {
		resp.BlockedRanges[i] = fromDomain(block)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(block *domain.BlockedRange) BlockResponse {
	resp := BlockResponse{
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
