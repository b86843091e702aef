package get_actionable_appointments

import (
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
)

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

// Handle GET /api/v1/appointments/actionable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActionable(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/actionable - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/actionable - count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
