package domain

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client's booking of a service with a stylist
type Appointment struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StylistID *int64 // nil = unassigned, occupies no slot
	Date      time.Time
	Time      types.TimeString
	Status    AppointmentStatus

	// Notes holds the client's free text; once cancelled it holds the cancellation reason
	Notes *string

	// Denormalized for listings, filled by read queries only
	ClientName  string
	ServiceName string
	StylistName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsAssigned returns true if a stylist is attached
func (a *Appointment) IsAssigned() bool {
	return a.StylistID != nil
}

// CancellationReason returns the reason for cancelled appointments and nil otherwise
func (a *Appointment) CancellationReason() *string {
	if !a.IsCancelled() {
		return nil
	}
	return a.Notes
}

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}
