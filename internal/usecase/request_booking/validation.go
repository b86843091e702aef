package request_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// parsedRequest запрос после разбора даты и времени
type parsedRequest struct {
	date  time.Time
	time  types.TimeString
	notes *string
}

// validateRequest проверяет обязательные поля и формат даты и времени
func validateRequest(req *Request) (*parsedRequest, error) {
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StylistID != nil && *req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time format, expected HH:MM", ErrInvalidInput)
	}

	var notes *string
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if utf8.RuneCountInString(trimmed) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if trimmed != "" {
			notes = &trimmed
		}
	}

	return &parsedRequest{date: date, time: t, notes: notes}, nil
}

// checkSlotFree время не должно быть заблокировано или занято
func checkSlotFree(t types.TimeString, blocked, occupied []types.TimeString) error {
	for _, b := range blocked {
		if b == t {
			return fmt.Errorf("%w: %s is blocked", ErrSlotOccupied, t)
		}
	}
	for _, o := range occupied {
		if o == t {
			return fmt.Errorf("%w: %s is already booked", ErrSlotOccupied, t)
		}
	}
	return nil
}
