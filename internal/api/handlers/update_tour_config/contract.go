package update_tour_config

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig/models"
)

type TourConfigService interface {
	Update(ctx context.Context, propertyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
	Delete(ctx context.Context, propertyID int64, req *models.DeleteConfigRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
