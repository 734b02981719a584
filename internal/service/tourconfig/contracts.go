package tourconfig

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
)

// TourConfigRepository интерфейс репозитория конфигурации слотов туров
type TourConfigRepository interface {
	GetByProperty(ctx context.Context, propertyID int64) (*domain.TourSlotsConfig, error)
	Upsert(ctx context.Context, config *domain.TourSlotsConfig) (*domain.TourSlotsConfig, error)
	Delete(ctx context.Context, propertyID int64) error
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
