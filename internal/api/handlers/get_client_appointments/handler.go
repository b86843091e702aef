package get_client_appointments

import (
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
)

const msgInvalidClientID = "ID de cliente inválido"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathID(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{id}/appointments - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.ListByClient(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/{id}/appointments - Failed to list: client_id=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/appointments - client_id=%d, count=%d", clientID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
