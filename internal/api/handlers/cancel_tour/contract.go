package cancel_tour

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/service/tours/models"
)

type TourService interface {
	Cancel(ctx context.Context, tourID int64, req *models.CancelTourRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
