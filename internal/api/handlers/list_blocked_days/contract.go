package list_blocked_days

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/blocks"
)

type BlockService interface {
	ListBlockedDays(ctx context.Context, stylistID int64) (*blocks.BlockedDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
