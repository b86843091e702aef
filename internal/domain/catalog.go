package domain

import "time"

// Stylist represents a salon employee who can be booked
type Stylist struct {
	ID         int64
	Name       string
	ServiceIDs []int64
	CreatedAt  time.Time
}

// Offers reports whether the stylist is eligible for the service
func (s *Stylist) Offers(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Service represents a bookable salon service. Price and duration are opaque to scheduling.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// StaffMember is a stylist with the number of appointments dated today
type StaffMember struct {
	StylistID         int64
	Name              string
	AppointmentsToday int
}
