package list_services

import (
	"net/http"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/domain"
)

type Handler struct {
	services ServiceRepository
	logger   Logger
}

func NewHandler(services ServiceRepository, logger Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description,omitempty"`
	Price           string `json:"price,omitempty"`
}

// ServicesResponse HTTP response model со списком услуг
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ServicesResponse{Services: make([]ServiceResponse, len(list))}
	for i, svc := range list {
		resp.Services[i] = fromDomain(svc)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Description:     svc.Description,
		Price:           svc.Price,
	}
}
