package models

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// CancelRequest запрос на отмену записи. Пустая причина заменяется на значение по умолчанию.
type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"clientId"`
	ServiceID int64   `json:"serviceId"`
	StylistID *int64  `json:"stylistId"`
	Date      string  `json:"date"` // "2025-10-15"
	Time      string  `json:"time"` // "10:00"
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`

	// Денормализованные данные
	ClientName  string  `json:"clientName,omitempty"`
	ServiceName string  `json:"serviceName,omitempty"`
	StylistName *string `json:"stylistName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		StylistID:          a.StylistID,
		Date:               a.Date.Format(domain.DateFormat),
		Time:               a.Time.String(),
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason(),
		ClientName:         a.ClientName,
		ServiceName:        a.ServiceName,
		StylistName:        a.StylistName,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}

	return resp
}
