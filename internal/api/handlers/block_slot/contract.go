package block_slot

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/blocks"
)

type BlockService interface {
	BlockSlot(ctx context.Context, req *blocks.BlockSlotRequest) (*blocks.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
