package get_staff

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/catalog"
)

type CatalogService interface {
	StaffOverview(ctx context.Context) (*catalog.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
