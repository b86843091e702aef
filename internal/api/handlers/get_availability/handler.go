package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	getAvailability "github.com/m04kA/salon-booking/internal/usecase/get_availability"
)

const (
	msgInvalidStylistID = "ID de estilista inválido"
	msgMissingDate      = "la fecha es obligatoria"
	msgInvalidDate      = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgStylistNotFound  = "estilista no encontrado"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/availability - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /stylists/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{StylistID: stylistID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/availability - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, handlers.CodeStylistNotFound, msgStylistNotFound)

		default:
			h.logger.Error("GET /stylists/{id}/availability - Failed to get availability: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/availability - stylist_id=%d, date=%s, free=%d",
		stylistID, date, len(result.FreeSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
