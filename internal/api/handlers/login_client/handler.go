package login_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/clients"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidCredentials = "teléfono o contraseña incorrectos"
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

// Handle POST /api/v1/clients/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req clients.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, clients.ErrInvalidCredentials) {
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /clients/login - Failed to login: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /clients/login - client_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
