package catalog

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	ListStylists(ctx context.Context, serviceID *int64) ([]*domain.Stylist, error)
	CreateStylist(ctx context.Context, stylist *domain.Stylist) (*domain.Stylist, error)
	DeleteStylist(ctx context.Context, id int64) error
	ServiceExists(ctx context.Context, id int64) (bool, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	StaffOverview(ctx context.Context, date time.Time) ([]*domain.StaffMember, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
