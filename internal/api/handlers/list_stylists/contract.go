package list_stylists

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/catalog"
)

type CatalogService interface {
	ListStylists(ctx context.Context) (*catalog.StylistListResponse, error)
	ListStylistsByService(ctx context.Context, serviceID int64) (*catalog.StylistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
