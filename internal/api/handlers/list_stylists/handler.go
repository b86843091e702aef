package list_stylists

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/catalog"
)

const (
	msgInvalidServiceID = "ID de servicio inválido"
	msgServiceNotFound  = "servicio no encontrado"
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

// Handle GET /api/v1/stylists
// и GET /api/v1/services/{serviceId}/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := mux.Vars(r)["serviceId"]; !ok {
		result, err := h.service.ListStylists(r.Context())
		if err != nil {
			h.logger.Error("GET /stylists - Failed to list: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	serviceID, err := handlers.PathID(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /services/{id}/stylists - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.ListStylistsByService(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{id}/stylists - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, handlers.CodeNotFound, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id}/stylists - Failed to list: service_id=%d, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
