package request_booking

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	LockSlot(ctx context.Context, stylistID int64, date time.Time, t types.TimeString) error
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// StylistCatalog источник мастеров
type StylistCatalog interface {
	GetStylist(ctx context.Context, id int64) (*domain.Stylist, error)
}

// AvailabilityLedger проекции доступности; внутри транзакции читают её снимок
type AvailabilityLedger interface {
	IsDayBlocked(ctx context.Context, stylistID int64, date time.Time) (bool, error)
	BlockedSlotsOn(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error)
	OccupiedSlotsOn(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчик исходов бронирования
type MetricsRecorder interface {
	IncBooking(result string)
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

type noopMetrics struct{}

func (noopMetrics) IncBooking(string) {}
