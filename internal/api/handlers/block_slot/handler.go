package block_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/blocks"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDateTime    = "fecha u hora inválida, se espera AAAA-MM-DD y HH:MM"
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

// Handle POST /api/v1/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.BlockSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blocks.ErrStylistNotFound):
			h.logger.Warn("POST /blocked-slots - Stylist not found: stylist_id=%d", req.StylistID)
			handlers.RespondNotFound(w, handlers.CodeStylistNotFound, msgStylistNotFound)

		default:
			h.logger.Error("POST /blocked-slots - Failed to block: stylist_id=%d, error=%v", req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}

	h.logger.Info("POST /blocked-slots - block_id=%d, stylist_id=%d, created=%t", result.ID, req.StylistID, result.Created)
	handlers.RespondJSON(w, status, result)
}
