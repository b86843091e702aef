package blocks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/domain"
)

// normalizeReason обрезает пробелы; пустая причина превращается в nil
func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}
	return &trimmed, nil
}

func validateDayRequest(req *BlockDayRequest) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.To == nil {
		return nil
	}
	if req.To.Before(req.Date) {
		return fmt.Errorf("%w: range end is before range start", ErrInvalidInput)
	}
	if days := int(req.To.Sub(req.Date).Hours()/24) + 1; days > domain.MaxBlockRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, domain.MaxBlockRangeDays)
	}
	return nil
}

func validateSlotRequest(req *BlockSlotRequest) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	return nil
}
