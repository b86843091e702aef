package block_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/blocks"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgInvalidInput       = "datos del bloqueo inválidos"
	msgStylistNotFound    = "estilista no encontrado"
)

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

// Handle POST /api/v1/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-days - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.BlockDay(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /blocked-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blocks.ErrStylistNotFound):
			h.logger.Warn("POST /blocked-days - Stylist not found: stylist_id=%d", req.StylistID)
			handlers.RespondNotFound(w, handlers.CodeStylistNotFound, msgStylistNotFound)

		default:
			h.logger.Error("POST /blocked-days - Failed to block: stylist_id=%d, error=%v", req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-days - stylist_id=%d, days=%d", req.StylistID, len(result.BlockedDays))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
