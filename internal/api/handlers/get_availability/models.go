package get_availability

import (
	"github.com/m04kA/salon-booking/internal/domain"
	getAvailability "github.com/m04kA/salon-booking/internal/usecase/get_availability"
	"github.com/m04kA/salon-booking/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StylistID     int64    `json:"stylistId"`
	StylistName   string   `json:"stylistName"`
	Date          string   `json:"date"`
	PastDate      bool     `json:"pastDate"`
	DayBlocked    bool     `json:"dayBlocked"`
	BlockedSlots  []string `json:"blockedSlots"`
	OccupiedSlots []string `json:"occupiedSlots"`
	FreeSlots     []string `json:"freeSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		StylistID:     resp.StylistID,
		StylistName:   resp.StylistName,
		Date:          resp.Date.Format(domain.DateFormat),
		PastDate:      resp.PastDate,
		DayBlocked:    resp.DayBlocked,
		BlockedSlots:  timesToStrings(resp.BlockedSlots),
		OccupiedSlots: timesToStrings(resp.OccupiedSlots),
		FreeSlots:     timesToStrings(resp.FreeSlots),
	}
}

func timesToStrings(list []types.TimeString) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.String())
	}
	return out
}
