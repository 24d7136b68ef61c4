package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/service/blocks"
)

const (
	msgInvalidBlockID = "некорректный идентификатор блокировки"
	msgBlockNotFound  = "блокировка не найдена"
)

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

// Handle DELETE /api/v1/admin/blocked-ranges/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/blocked-ranges/{id} - Invalid id: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocked-ranges/{id} - Block not found: block_id=%d", id)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-ranges/{id} - Failed to delete block: block_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-ranges/{id} - Block deleted: block_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
