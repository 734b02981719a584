package confirm_booking

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, bookingID int64, req *models.ConfirmBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
