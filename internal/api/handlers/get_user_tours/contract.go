package get_user_tours

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/service/tours/models"
)

type TourService interface {
	GetUserTours(ctx context.Context, req *models.GetUserToursRequest) (*models.TourListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
