package register_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/clients"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "nombre, teléfono o contraseña inválidos"
	msgPhoneTaken         = "el teléfono ya está registrado"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req clients.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, clients.ErrPhoneTaken):
			h.logger.Warn("POST /clients/register - Phone taken")
			handlers.RespondConflict(w, handlers.CodeConflict, msgPhoneTaken)

		default:
			h.logger.Error("POST /clients/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/register - Client registered: client_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
