package register_client

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/clients"
)

type ClientService interface {
	Register(ctx context.Context, req *clients.RegisterRequest) (*clients.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
