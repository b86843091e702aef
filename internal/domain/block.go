package domain

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// BlockedDay marks a whole day as unavailable for a stylist
type BlockedDay struct {
	ID        int64
	StylistID int64
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}

// BlockedSlot marks a single time slot as unavailable for a stylist.
// Checked independently of BlockedDay.
type BlockedSlot struct {
	ID        int64
	StylistID int64
	Date      time.Time
	Time      types.TimeString
	Reason    *string
	CreatedAt time.Time
}
