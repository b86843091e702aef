package create_stylist

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/catalog"
)

type CatalogService interface {
	AddStylist(ctx context.Context, req *catalog.CreateStylistRequest) (*catalog.StylistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
