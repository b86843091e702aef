package blocks

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	CreateDay(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, bool, error)
	CreateSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, bool, error)
	DeleteDay(ctx context.Context, id int64) (bool, error)
	DeleteSlot(ctx context.Context, id int64) (bool, error)
	ListDays(ctx context.Context, stylistID int64) ([]*domain.BlockedDay, error)
	ListSlots(ctx context.Context, stylistID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
