package schedule_tour

import (
	"context"

	scheduleTour "github.com/m04kA/RPM-BookingService/internal/usecase/schedule_tour"
)

type ScheduleTourUseCase interface {
	Execute(ctx context.Context, req *scheduleTour.Request) (*scheduleTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
