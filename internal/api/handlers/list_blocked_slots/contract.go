package list_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/service/blocks"
)

type BlockService interface {
	ListBlockedSlots(ctx context.Context, stylistID int64, date time.Time) (*blocks.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
