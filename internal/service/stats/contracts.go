package stats

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// AppointmentCounter агрегаты по записям
type AppointmentCounter interface {
	CountByStatus(ctx context.Context, status domain.AppointmentStatus, date *time.Time) (int, error)
	CountByStatusInRange(ctx context.Context, status domain.AppointmentStatus, from, to time.Time) (int, error)
	CountByStatusBetween(ctx context.Context, from, to time.Time) (domain.SatisfactionCounts, error)
}

// TransactionManager read-only транзакция для согласованной панели
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

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
