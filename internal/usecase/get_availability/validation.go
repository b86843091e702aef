package get_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// validateRequest валидирует входные данные и разбирает дату
func validateRequest(req *Request) (time.Time, error) {
	if req.StylistID <= 0 {
		return time.Time{}, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	return date, nil
}
