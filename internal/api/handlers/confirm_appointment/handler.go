package confirm_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID de turno inválido"
	msgNotFound             = "turno no encontrado"
	msgSlotOccupied         = "el horario ya fue tomado por otro turno"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/confirm - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.Confirm(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/confirm - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, handlers.CodeNotFound, msgNotFound)

		case errors.Is(err, appointments.ErrSlotOccupied):
			h.logger.Warn("PUT /appointments/{id}/confirm - Slot occupied: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, handlers.CodeSlotOccupied, msgSlotOccupied)

		default:
			h.logger.Error("PUT /appointments/{id}/confirm - Failed to confirm: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/confirm - Appointment confirmed: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
