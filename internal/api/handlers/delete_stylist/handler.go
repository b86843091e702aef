package delete_stylist

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/catalog"
)

const (
	msgInvalidStylistID = "ID de estilista inválido"
	msgStylistNotFound  = "estilista no encontrado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/stylists/{stylistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("DELETE /stylists/{id} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	if err := h.service.DeleteStylist(r.Context(), stylistID); err != nil {
		if errors.Is(err, catalog.ErrStylistNotFound) {
			h.logger.Warn("DELETE /stylists/{id} - Not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, handlers.CodeStylistNotFound, msgStylistNotFound)
			return
		}
		h.logger.Error("DELETE /stylists/{id} - Failed to delete: stylist_id=%d, error=%v", stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /stylists/{id} - Stylist deleted: stylist_id=%d", stylistID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
