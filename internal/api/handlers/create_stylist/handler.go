package create_stylist

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "nombre o servicios inválidos"
	msgServiceNotFound    = "alguno de los servicios no existe"
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

// Handle POST /api/v1/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateStylistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stylists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddStylist(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /stylists - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /stylists - Unknown service: %v", req.ServiceIDs)
			handlers.RespondNotFound(w, handlers.CodeNotFound, msgServiceNotFound)

		default:
			h.logger.Error("POST /stylists - Failed to create stylist: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stylists - Stylist created: stylist_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
