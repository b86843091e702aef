package create_appointment

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	requestBooking "github.com/m04kA/salon-booking/internal/usecase/request_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID  int64   `json:"clientId"`
	ServiceID int64   `json:"serviceId"`
	StylistID *int64  `json:"stylistId,omitempty"`
	Date      string  `json:"date"` // "2025-10-15"
	Time      string  `json:"time"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"clientId"`
	ServiceID int64   `json:"serviceId"`
	StylistID *int64  `json:"stylistId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Разбор даты и времени выполняет use case.
func (r *CreateAppointmentRequest) ToUseCaseRequest() *requestBooking.Request {
	return &requestBooking.Request{
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		StylistID: r.StylistID,
		Date:      r.Date,
		Time:      r.Time,
		Notes:     r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		ServiceID: resp.ServiceID,
		StylistID: resp.StylistID,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
