package list_services

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/catalog"
)

type CatalogService interface {
	ListServices(ctx context.Context) (*catalog.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
