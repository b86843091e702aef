package catalog

import "github.com/m04kA/salon-booking/internal/domain"

// CreateStylistRequest новый мастер и услуги, которые он оказывает
type CreateStylistRequest struct {
	Name       string  `json:"name"`
	ServiceIDs []int64 `json:"serviceIds"`
}

type StylistResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ServiceIDs []int64 `json:"serviceIds"`
}

type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
}

type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type StaffMemberResponse struct {
	StylistID         int64  `json:"stylistId"`
	Name              string `json:"name"`
	AppointmentsToday int    `json:"appointmentsToday"`
}

type StaffResponse struct {
	Date  string                `json:"date"`
	Staff []StaffMemberResponse `json:"staff"`
}

func fromDomainStylist(s *domain.Stylist) StylistResponse {
	ids := s.ServiceIDs
	if ids == nil {
		ids = []int64{}
	}
	return StylistResponse{ID: s.ID, Name: s.Name, ServiceIDs: ids}
}

func fromDomainStylistList(list []*domain.Stylist) *StylistListResponse {
	resp := &StylistListResponse{Stylists: make([]StylistResponse, 0, len(list))}
	for _, s := range list {
		resp.Stylists = append(resp.Stylists, fromDomainStylist(s))
	}
	return resp
}
