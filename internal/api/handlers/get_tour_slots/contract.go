package get_tour_slots

import (
	"context"

	getTourSlots "github.com/m04kA/RPM-BookingService/internal/usecase/get_tour_slots"
)

type GetTourSlotsUseCase interface {
	Execute(ctx context.Context, req *getTourSlots.Request) (*getTourSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
