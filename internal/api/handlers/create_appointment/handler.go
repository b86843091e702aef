package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	requestBooking "github.com/m04kA/salon-booking/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgInvalidInput          = "datos de la reserva inválidos: revise servicio, fecha (AAAA-MM-DD) y hora (HH:MM)"
	msgPastDate              = "no se puede reservar en una fecha pasada"
	msgStylistNotFound       = "estilista no encontrado"
	msgStylistNotEligible    = "el estilista no ofrece este servicio"
	msgStylistUnavailableDay = "el estilista no trabaja ese día"
	msgSlotOccupied          = "el horario seleccionado no está disponible"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, requestBooking.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodePastDate, msgPastDate)

		case errors.Is(err, requestBooking.ErrStylistNotFound):
			h.logger.Warn("POST /appointments - Stylist not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, handlers.CodeStylistNotFound, msgStylistNotFound)

		case errors.Is(err, requestBooking.ErrStylistNotEligible):
			h.logger.Warn("POST /appointments - Stylist not eligible: client_id=%d, service_id=%d", req.ClientID, req.ServiceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeStylistNotEligible, msgStylistNotEligible)

		case errors.Is(err, requestBooking.ErrStylistUnavailableDay):
			h.logger.Warn("POST /appointments - Stylist unavailable: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondConflict(w, handlers.CodeStylistUnavailableDay, msgStylistUnavailableDay)

		case errors.Is(err, requestBooking.ErrSlotOccupied):
			h.logger.Warn("POST /appointments - Slot occupied: client_id=%d, date=%s, time=%s", req.ClientID, req.Date, req.Time)
			handlers.RespondConflict(w, handlers.CodeSlotOccupied, msgSlotOccupied)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d", result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
