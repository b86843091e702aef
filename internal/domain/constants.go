package domain

import "github.com/m04kA/salon-booking/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultCancellationReason is stored when staff cancels without a reason
const DefaultCancellationReason = "Sin especificar"

// Business validation constants
const (
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
	MaxBlockReasonLength          = 255
	MaxBlockRangeDays             = 366
	DefaultSatisfactionWindowDays = 30
)

// DefaultSlotTimes is the bookable grid offered to clients
var DefaultSlotTimes = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// ActiveStatuses statuses that occupy a slot
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// ActiveStatusStrings ActiveStatuses as plain strings for SQL filters
func ActiveStatusStrings() []string {
	out := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		out[i] = string(s)
	}
	return out
}
