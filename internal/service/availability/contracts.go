package availability

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// BlockReader источник блокировок дней и слотов
type BlockReader interface {
	IsDayBlocked(ctx context.Context, stylistID int64, date time.Time) (bool, error)
	BlockedTimes(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error)
}

// OccupancyReader источник занятых слотов
type OccupancyReader interface {
	OccupiedTimes(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error)
}
