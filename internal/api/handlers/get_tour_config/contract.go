package get_tour_config

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig/models"
)

type TourConfigService interface {
	GetEffectiveConfig(ctx context.Context, propertyID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
