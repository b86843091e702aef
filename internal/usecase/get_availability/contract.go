package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// StylistCatalog источник мастеров
type StylistCatalog interface {
	GetStylist(ctx context.Context, id int64) (*domain.Stylist, error)
}

// AvailabilityLedger снимок доступности мастера на дату
type AvailabilityLedger interface {
	Snapshot(ctx context.Context, stylistID int64, date time.Time) (*domain.DaySnapshot, error)
}

// TransactionManager read-only транзакция для согласованного снимка
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
