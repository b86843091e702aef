package unblock_slot

import (
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
)

const msgInvalidBlockID = "ID de bloqueo inválido"

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

// Handle DELETE /api/v1/blocked-slots/{blockId}
// Повторное удаление тоже отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := handlers.PathID(r, "blockId")
	if err != nil {
		h.logger.Warn("DELETE /blocked-slots/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.UnblockSlot(r.Context(), blockID); err != nil {
		h.logger.Error("DELETE /blocked-slots/{id} - Failed to unblock: block_id=%d, error=%v", blockID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blocked-slots/{id} - block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
