package get_stats

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/stats"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*stats.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
