package list_blocked_days

import (
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
)

const msgInvalidStylistID = "ID de estilista inválido"

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/blocked-days - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.ListBlockedDays(r.Context(), stylistID)
	if err != nil {
		h.logger.Error("GET /stylists/{id}/blocked-days - Failed to list: stylist_id=%d, error=%v", stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
