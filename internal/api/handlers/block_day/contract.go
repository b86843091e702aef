package block_day

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/blocks"
)

type BlockService interface {
	BlockDay(ctx context.Context, req *blocks.BlockDayRequest) (*blocks.BlockedDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
