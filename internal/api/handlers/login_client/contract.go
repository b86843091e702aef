package login_client

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/clients"
)

type ClientService interface {
	Login(ctx context.Context, req *clients.LoginRequest) (*clients.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
